package utils

import (
	"runtime"
	"strings"
)

// GetFunctionName retrieves the name of the function at the specified call depth.
// depth 0 = caller of GetFunctionName, depth 1 = caller of that caller, etc.
func GetFunctionName(depth int) string {
	pc, _, _, ok := runtime.Caller(depth + 1)
	if !ok {
		return "unknown"
	}

	return shortFuncName(runtime.FuncForPC(pc).Name())
}

// shortFuncName trims the package path and receiver from a fully qualified
// function name.
func shortFuncName(fullName string) string {
	if idx := strings.LastIndex(fullName, "/"); idx >= 0 {
		fullName = fullName[idx+1:]
	}
	if idx := strings.Index(fullName, "."); idx >= 0 {
		fullName = fullName[idx+1:]
	}
	if idx := strings.LastIndex(fullName, "."); idx >= 0 {
		fullName = fullName[idx+1:]
	}
	return fullName
}
