package dates

import (
	"time"

	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/failures"
)

const (
	timestampLayoutConstant            = "2006-01-02 15:04:05"
	dateLayoutConstant                 = "2006-01-02"
	convertOperationNameConstant       = "ConvertDateFormat"
	inputFormatFailureMessageConstant  = "unable to translate input date format"
	outputFormatFailureMessageConstant = "unable to translate output date format"
	parseFailureMessageConstant        = "unable to parse date text"
	logFieldDateTextConstant           = "date_text"
	logFieldFormatConstant             = "format"
)

// Clock supplies the current time, allowing deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real local time.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Service exposes date and time helpers over a shared logger and clock.
type Service struct {
	logger *zap.Logger
	clock  Clock
}

// NewService constructs a Service; a nil clock falls back to SystemClock.
func NewService(logger *zap.Logger, clock Clock) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{logger: logger, clock: clock}
}

// CurrentTimestamp renders the current local time as YYYY-MM-DD HH:MM:SS.
func (service *Service) CurrentTimestamp() string {
	return service.clock.Now().Format(timestampLayoutConstant)
}

// ConvertFormat re-renders dateText from inputFormat into outputFormat, both
// given as percent-directive formats.
func (service *Service) ConvertFormat(dateText string, inputFormat string, outputFormat string) (string, error) {
	inputLayout, inputError := TranslateFormat(inputFormat)
	if inputError != nil {
		service.logger.Error(inputFormatFailureMessageConstant, zap.String(logFieldFormatConstant, inputFormat), zap.Error(inputError))
		return "", failures.NewParse(convertOperationNameConstant, inputError)
	}

	outputLayout, outputError := TranslateFormat(outputFormat)
	if outputError != nil {
		service.logger.Error(outputFormatFailureMessageConstant, zap.String(logFieldFormatConstant, outputFormat), zap.Error(outputError))
		return "", failures.NewParse(convertOperationNameConstant, outputError)
	}

	parsedTime, parseError := time.Parse(inputLayout, dateText)
	if parseError != nil {
		service.logger.Error(parseFailureMessageConstant, zap.String(logFieldDateTextConstant, dateText), zap.Error(parseError))
		return "", failures.NewParse(convertOperationNameConstant, parseError)
	}

	return parsedTime.Format(outputLayout), nil
}

// FutureDate returns today's local date shifted by dayOffset calendar days as
// YYYY-MM-DD. Negative offsets yield past dates.
func (service *Service) FutureDate(dayOffset int) string {
	shiftedTime := service.clock.Now().AddDate(0, 0, dayOffset)
	return shiftedTime.Format(dateLayoutConstant)
}
