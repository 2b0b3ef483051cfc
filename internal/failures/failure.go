package failures

import (
	"errors"
	"fmt"
)

const (
	fileIOKindNameConstant           = "file_io"
	parseKindNameConstant            = "parse"
	networkKindNameConstant          = "network"
	emptyResultKindNameConstant      = "empty_result"
	unknownKindNameConstant          = "unknown"
	failureWithCauseTemplateConstant = "%s failed: %v"
	failureWithoutCauseTemplate      = "%s failed"
)

// Kind classifies a helper failure.
type Kind int

// Failure kinds recognized across helper operations.
const (
	KindUnknown Kind = iota
	KindFileIO
	KindParse
	KindNetwork
	KindEmptyResult
)

var kindNameMapping = map[Kind]string{
	KindFileIO:      fileIOKindNameConstant,
	KindParse:       parseKindNameConstant,
	KindNetwork:     networkKindNameConstant,
	KindEmptyResult: emptyResultKindNameConstant,
}

// String returns the stable textual name of the kind.
func (kind Kind) String() string {
	kindName, kindKnown := kindNameMapping[kind]
	if !kindKnown {
		return unknownKindNameConstant
	}
	return kindName
}

// Failure describes an unsuccessful helper operation with a classified cause.
type Failure struct {
	FailureKind Kind
	Operation   string
	Cause       error
}

// Error renders the operation name and underlying cause.
func (failure *Failure) Error() string {
	if failure.Cause == nil {
		return fmt.Sprintf(failureWithoutCauseTemplate, failure.Operation)
	}
	return fmt.Sprintf(failureWithCauseTemplateConstant, failure.Operation, failure.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As chains.
func (failure *Failure) Unwrap() error {
	return failure.Cause
}

// NewFileIO wraps a filesystem error for the named operation.
func NewFileIO(operationName string, cause error) *Failure {
	return &Failure{FailureKind: KindFileIO, Operation: operationName, Cause: cause}
}

// NewParse wraps a decoding or format error for the named operation.
func NewParse(operationName string, cause error) *Failure {
	return &Failure{FailureKind: KindParse, Operation: operationName, Cause: cause}
}

// NewNetwork wraps a transport, timeout, or HTTP status error for the named operation.
func NewNetwork(operationName string, cause error) *Failure {
	return &Failure{FailureKind: KindNetwork, Operation: operationName, Cause: cause}
}

// NewEmptyResult records that the named operation produced no usable result.
func NewEmptyResult(operationName string) *Failure {
	return &Failure{FailureKind: KindEmptyResult, Operation: operationName}
}

// KindOf reports the failure kind carried by the error chain, or KindUnknown.
func KindOf(candidateError error) Kind {
	var failure *Failure
	if errors.As(candidateError, &failure) {
		return failure.FailureKind
	}
	return KindUnknown
}
