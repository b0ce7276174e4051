package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// registerValidators hooks date checks into gin's binding engine.
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterStructValidation(validateTripRequest, TripRequest{})
		v.RegisterStructValidation(validateTripPatchRequest, TripPatchRequest{})
	})
}

func validateTripRequest(sl validator.StructLevel) {
	r := sl.Current().Interface().(TripRequest)
	if r.StartDate.IsZero() {
		sl.ReportError(r.StartDate, "startDate", "StartDate", "required", "")
	}
	if r.EndDate.IsZero() {
		sl.ReportError(r.EndDate, "endDate", "EndDate", "required", "")
	}
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate.Time) {
		sl.ReportError(r.EndDate, "endDate", "EndDate", "gtefield", "StartDate")
	}
}

// validateTripPatchRequest checks date order when both dates are sent.
// A single date is checked against the stored trip by the service.
func validateTripPatchRequest(sl validator.StructLevel) {
	r := sl.Current().Interface().(TripPatchRequest)
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(r.StartDate.Time) {
		sl.ReportError(r.EndDate, "endDate", "EndDate", "gtefield", "StartDate")
	}
}
