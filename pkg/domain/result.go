package domain

import (
	"brandkit/pkg/serrors"
	"encoding/json"
	"errors"
)

// Result is the uniform envelope returned to callers of every operation.
// A failed Result never carries Data; a successful data-returning Result
// always does.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	// Error is either a string or the JSON error body returned by an
	// upstream API.
	Error any `json:"error,omitempty"`
}

// bodyCarrier is implemented by upstream errors that kept the response
// body of a failed call.
type bodyCarrier interface {
	ResponseBody() json.RawMessage
}

// OK wraps data in a successful Result.
func OK[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: &data, Message: message}
}

// Fail converts err into a failed Result. An upstream JSON error body is
// preserved in Error and the generic failure text moves to Message;
// otherwise Error holds the error's message without its cause chain.
func Fail[T any](err error) Result[T] {
	res := Result[T]{Success: false, Error: serrors.MessageOf(err)}

	var bc bodyCarrier
	if errors.As(err, &bc) {
		if body := bc.ResponseBody(); len(body) > 0 && json.Valid(body) {
			res.Message = serrors.MessageOf(err)
			res.Error = body
		}
	}

	return res
}

// ResultOf returns Fail(err) when err is non-nil and OK(data, message)
// otherwise.
func ResultOf[T any](data T, message string, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}

	return OK(data, message)
}

// BulkEnvelope is the Result of a bulk record insert: Data holds the created
// records while Outcome and Failed expose partial failures.
type BulkEnvelope struct {
	Result[[]DNSRecord]

	Outcome BulkOutcome    `json:"outcome,omitempty"`
	Failed  []FailedRecord `json:"failed,omitempty"`
}

// BulkResultOf converts a bulk insert into its envelope.
func BulkResultOf(res BulkResult, kind string, err error) BulkEnvelope {
	if err != nil {
		return BulkEnvelope{Result: Fail[[]DNSRecord](err)}
	}

	return BulkEnvelope{
		Result:  OK(res.Created, res.Message(kind)),
		Outcome: res.Outcome,
		Failed:  res.Failed,
	}
}
