// Package filter provides expr-based filtering of courses and images fetched
// from the media management API. Filtering happens entirely client-side; the
// API's own query parameters only cover exact attribute matches, so anything
// richer (substring, boolean combinations, metadata lookups) is evaluated here.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/atgdev/mediamanager/mediamanager"
)

// CourseFilter is a compiled filter expression over courses.
type CourseFilter struct {
	expression string
	program    *vm.Program
}

// ImageFilter is a compiled filter expression over images.
type ImageFilter struct {
	expression string
	program    *vm.Program
}

// helperFuncs are available inside every filter expression.
func helperFuncs() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

func compile(expression string) (*vm.Program, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty filter expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFuncs()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}
	return program, nil
}

// CompileCourseFilter compiles a filter expression evaluated against courses.
//
// The course is exposed as Course, e.g.:
//
//	contains(Course.Title, "art") and Course.SISCourseID != ""
//	hasContext() and Course.CanvasCourseID > 0
func CompileCourseFilter(expression string) (*CourseFilter, error) {
	program, err := compile(expression)
	if err != nil {
		return nil, err
	}
	return &CourseFilter{expression: expression, program: program}, nil
}

// Evaluate runs the filter against a course.
func (f *CourseFilter) Evaluate(course mediamanager.Course) (bool, error) {
	env := helperFuncs()
	env["Course"] = course
	env["hasContext"] = func() bool {
		return course.LTIContextID != "" && course.LTIToolConsumerInstanceGUID != ""
	}

	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Subject: course.Title, Err: err}
	}
	result, ok := output.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expression, Subject: course.Title, Reason: "expression does not evaluate to a boolean"}
	}
	return result, nil
}

// String returns the original expression.
func (f *CourseFilter) String() string {
	return f.expression
}

// CompileImageFilter compiles a filter expression evaluated against images.
//
// The image is exposed as Image, plus a meta(label) helper that looks up a
// metadata value by label:
//
//	contains(Image.Title, "vermeer") or meta("artist") == "Vermeer"
func CompileImageFilter(expression string) (*ImageFilter, error) {
	program, err := compile(expression)
	if err != nil {
		return nil, err
	}
	return &ImageFilter{expression: expression, program: program}, nil
}

// Evaluate runs the filter against an image.
func (f *ImageFilter) Evaluate(image mediamanager.Image) (bool, error) {
	env := helperFuncs()
	env["Image"] = image
	env["meta"] = func(label string) string {
		for _, m := range image.Metadata {
			if strings.EqualFold(m.Label, label) {
				return m.Value
			}
		}
		return ""
	}

	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Subject: image.Title, Err: err}
	}
	result, ok := output.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expression, Subject: image.Title, Reason: "expression does not evaluate to a boolean"}
	}
	return result, nil
}

// String returns the original expression.
func (f *ImageFilter) String() string {
	return f.expression
}

// Courses returns the subset of courses matching the filter.
func Courses(courses []mediamanager.Course, f *CourseFilter) ([]mediamanager.Course, error) {
	var matched []mediamanager.Course
	for _, course := range courses {
		ok, err := f.Evaluate(course)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, course)
		}
	}
	return matched, nil
}

// Images returns the subset of images matching the filter.
func Images(images []mediamanager.Image, f *ImageFilter) ([]mediamanager.Image, error) {
	var matched []mediamanager.Image
	for _, image := range images {
		ok, err := f.Evaluate(image)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, image)
		}
	}
	return matched, nil
}
