package types

import "fmt"

type Status struct {
	Code   int
	Reason string
}

var (
	StatusOK       = Status{Code: 200, Reason: "OK"}
	StatusCreated  = Status{Code: 201, Reason: "Created"}
	StatusNotFound = Status{Code: 404, Reason: "Not Found"}
)

func (s Status) String() string {
	return fmt.Sprintf("%d %s", s.Code, s.Reason)
}
