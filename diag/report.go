// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag turns the errors returned while parsing shader files and
// building programs into reports for people, with the backend's logs
// matched up to the shader source lines they refer to.
package diag

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/glshader/glcall"
	"cogentcore.org/glshader/program"
	"cogentcore.org/glshader/shader"
)

// Report describes one error.
type Report struct {

	// Title is a one-line summary.
	Title string

	// Location is the file:line the error occurred at, if known.
	Location string

	// Stages has the compile log of each stage that failed to compile.
	Stages []StageLog

	// Log is the link or validation log, or other detail.
	Log string

	// Err is the error described.
	Err error
}

// StageLog is the compile log of one shader stage.
type StageLog struct {

	// Kind is the stage.
	Kind shader.Kinds

	// Log is the full compile log.
	Log string

	// Lines are the log messages, with the source lines they name.
	Lines []LogLine
}

// LogLine is one message of a backend log.
type LogLine struct {

	// Line is the 1-based line number of the stage source the message
	// refers to, or 0 if it names none.
	Line int

	// Message is the full text of the log line.
	Message string
}

// logLineFormats match the source line number in the log formats of
// the common GL drivers.
var logLineFormats = []*regexp.Regexp{
	// Mesa: 0:3(12): error: ...
	regexp.MustCompile(`^\s*\d+:(\d+)\(\d+\)`),
	// NVIDIA: 0(3) : error C0000: ...
	regexp.MustCompile(`^\s*\d+\((\d+)\)`),
	// Apple, AMD and glslang: ERROR: 0:3: ...
	regexp.MustCompile(`^\s*(?:ERROR|WARNING|error|warning):\s*\d+:(\d+):`),
}

// ParseLog splits a backend log into lines, finding the source line
// number each one names. Blank lines are dropped.
func ParseLog(log string) []LogLine {
	var lines []LogLine
	for _, ln := range strings.Split(log, "\n") {
		ln = strings.TrimRight(ln, "\r\x00 \t")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		ll := LogLine{Message: ln}
		for _, re := range logLineFormats {
			if m := re.FindStringSubmatch(ln); m != nil {
				ll.Line, _ = strconv.Atoi(m[1])
				break
			}
		}
		lines = append(lines, ll)
	}
	return lines
}

// Describe returns a report for the given error.
func Describe(err error) *Report {
	r := &Report{Err: err}
	if err == nil {
		r.Title = "no error"
		return r
	}
	var pe *shader.ParseError
	var be *program.BuildError
	var ce *program.CompileError
	var ge *glcall.Error
	switch {
	case errors.As(err, &pe):
		r.Title = "shader file: " + pe.Code.String()
		if pe.Path != "" || pe.Line > 0 {
			r.Location = location(pe.Path, pe.Line)
		}
		if pe.Text != "" {
			r.Log = pe.Text
		}
		if pe.Err != nil {
			r.Log = pe.Err.Error()
		}
	case errors.As(err, &be):
		r.describeBuild(be)
	case errors.As(err, &ce):
		r.Title = ce.Kind.String() + " shader failed to compile"
		r.Stages = []StageLog{stageLog(ce)}
	case errors.As(err, &ge):
		r.describeBackend(ge)
	default:
		r.Title = err.Error()
	}
	return r
}

func (r *Report) describeBuild(be *program.BuildError) {
	switch be.Code {
	case program.MissingStage:
		r.Title = fmt.Sprintf("no %s shader source", be.Missing)
	case program.CompileFailed:
		kinds := make([]string, len(be.Compile))
		for i, ce := range be.Compile {
			kinds[i] = ce.Kind.String()
			r.Stages = append(r.Stages, stageLog(ce))
		}
		r.Title = strings.Join(kinds, " and ") + " shader failed to compile"
	case program.LinkFailed, program.ValidationFailed:
		r.Title = "program failed to link"
		if be.Code == program.ValidationFailed {
			r.Title = "program failed to validate"
		}
		r.Log = be.Log
		if r.Log == "" && be.Err != nil {
			r.Log = "no log: " + be.Err.Error()
		}
	case program.BackendFailed:
		for _, ce := range be.Compile {
			r.Stages = append(r.Stages, stageLog(ce))
		}
		var ge *glcall.Error
		if errors.As(be.Err, &ge) {
			r.describeBackend(ge)
			return
		}
		r.Title = "graphics backend error"
		if be.Err != nil {
			r.Log = be.Err.Error()
		}
	}
}

func (r *Report) describeBackend(ge *glcall.Error) {
	r.Title = "graphics backend error in " + ge.Op
	r.Location = location(ge.File, ge.Line)
	names := make([]string, len(ge.Codes))
	for i, c := range ge.Codes {
		names[i] = glcall.CodeName(c)
	}
	r.Log = strings.Join(names, "\n")
}

func stageLog(ce *program.CompileError) StageLog {
	return StageLog{Kind: ce.Kind, Log: ce.Log, Lines: ParseLog(ce.Log)}
}

func location(file string, line int) string {
	if line <= 0 {
		return file
	}
	if file == "" {
		return "line " + strconv.Itoa(line)
	}
	return file + ":" + strconv.Itoa(line)
}

// String returns the report as plain text.
func (r *Report) String() string {
	var b strings.Builder
	b.WriteString("error: " + r.Title + "\n")
	if r.Location != "" {
		b.WriteString("  at " + r.Location + "\n")
	}
	for _, st := range r.Stages {
		b.WriteString("  " + st.Kind.String() + " shader:\n")
		for _, ll := range st.Lines {
			b.WriteString("    " + ll.Message + "\n")
		}
	}
	if r.Log != "" {
		for _, ln := range strings.Split(strings.TrimSpace(r.Log), "\n") {
			b.WriteString("    " + ln + "\n")
		}
	}
	return b.String()
}
