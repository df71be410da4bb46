package attendance

import "errors"

var (
	ErrAlreadyPunchedIn  = errors.New("already punched in today")
	ErrNoOpenRecord      = errors.New("no open punch in record found for today")
	ErrAlreadyPunchedOut = errors.New("already punched out today")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
