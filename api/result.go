// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package api

// Result is the status code every ABI call returns.  OUT parameters
// are only meaningful when the call returned Success.
type Result int32

const (
	// Success indicates the call completed and its outputs are valid.
	Success Result = 0
	// ErrorUnknownHandle indicates the given handle is not present in
	// the registry.  Non-fatal; the caller may retry with a valid
	// handle.
	ErrorUnknownHandle Result = -100
	// ErrorUnknown indicates any other fault.  The underlying error is
	// reported once on the diagnostic stream before this is returned.
	ErrorUnknown Result = -999
)

// Version is the constant GetVersion reports.  Callers must treat any
// other value as incompatible.
const Version = 1337

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case ErrorUnknownHandle:
		return "ErrorUnknownHandle"
	case ErrorUnknown:
		return "ErrorUnknown"
	}
	return "Result(?)"
}
