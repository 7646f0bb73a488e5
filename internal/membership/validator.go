package membership

import (
	"context"
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// FieldErrors maps a request field to its violation messages.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// CustomerDirectory is the slice of the customer repository the validator
// needs for existence checks.
type CustomerDirectory interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// TypeDirectory reports whether a membership type id exists.
type TypeDirectory interface {
	TypeExists(ctx context.Context, id int) (bool, error)
}

// OrderValidator checks a raw order request against the purchase rules. It
// takes its notion of "today" from an injected clock so the date rules are
// deterministic under test.
type OrderValidator struct {
	types     TypeDirectory
	customers CustomerDirectory
	now       func() time.Time
}

func NewOrderValidator(types TypeDirectory, customers CustomerDirectory, now func() time.Time) *OrderValidator {
	return &OrderValidator{types: types, customers: customers, now: now}
}

// Validate returns the normalized input when every rule passes, or the
// per-field violations. The error return is reserved for repository
// failures during existence checks.
func (v *OrderValidator) Validate(ctx context.Context, req OrderRequest) (*OrderInput, FieldErrors, error) {
	errs := FieldErrors{}
	in := &OrderInput{}

	today := truncateToDay(v.now())

	dateStart, ok := parseDateField(req.DateStart, "date_start", errs)
	if ok {
		if dateStart.Before(today) {
			errs.add("date_start", "the date_start must be a date after or equal to today")
		} else {
			in.DateStart = dateStart
		}
	}

	dateEnd, endOK := parseDateField(req.DateEnd, "date_end", errs)
	if endOK {
		if ok && dateEnd.Before(dateStart) {
			errs.add("date_end", "the date_end must be a date after or equal to date_start")
		} else {
			in.DateEnd = dateEnd
		}
	}

	if days, ok := parseIntField(req.TotalDays, "total_days", errs); ok {
		if days < 1 {
			errs.add("total_days", "the total_days must be at least 1")
		} else {
			in.TotalDays = days
		}
	}

	if qty, ok := parseIntField(req.MembershipQuantity, "membership_quantity", errs); ok {
		if qty < 1 {
			errs.add("membership_quantity", "the membership_quantity must be at least 1")
		} else {
			in.MembershipQuantity = qty
		}
	}

	if typeID, ok := parseIntField(req.MembershipTypeID, "membership_type_id", errs); ok {
		exists, err := v.types.TypeExists(ctx, typeID)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			errs.add("membership_type_id", "the selected membership_type_id is invalid")
		} else {
			in.MembershipTypeID = typeID
		}
	}

	if customerID, ok := parseIntField(req.CustomerID, "customer_id", errs); ok {
		exists, err := v.customers.Exists(ctx, customerID)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			errs.add("customer_id", "the selected customer_id is invalid")
		} else {
			in.CustomerID = customerID
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return in, nil, nil
}

// parseDateField accepts only a JSON string holding a YYYY-MM-DD date.
func parseDateField(raw json.RawMessage, field string, errs FieldErrors) (time.Time, bool) {
	if len(raw) == 0 {
		errs.add(field, "the "+field+" field is required")
		return time.Time{}, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		errs.add(field, "the "+field+" is not a valid date")
		return time.Time{}, false
	}

	d, err := time.Parse(dateLayout, s)
	if err != nil {
		errs.add(field, "the "+field+" does not match the format YYYY-MM-DD")
		return time.Time{}, false
	}

	return d, true
}

// parseIntField accepts only a JSON integer.
func parseIntField(raw json.RawMessage, field string, errs FieldErrors) (int, bool) {
	if len(raw) == 0 {
		errs.add(field, "the "+field+" field is required")
		return 0, false
	}

	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		errs.add(field, "the "+field+" must be an integer")
		return 0, false
	}

	return n, true
}

// truncateToDay drops the time-of-day component. The result is anchored in
// UTC so it compares cleanly against parsed YYYY-MM-DD values regardless of
// the server timezone.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
