package util

import "errors"

var (
	ErrApprovalRequired     = errors.New("KC not submitted: approval required. Please set 'approved': true in the payload")
	ErrKCNotFound           = errors.New("knowledge component not found")
	ErrNoHistoryForPair     = errors.New("no assessment history found for this student and KC")
	ErrUnresolvableLocation = errors.New("location could not be resolved: provide 'latitude'/'longitude' fields, a 'lat,lng' string, or a geocodable place name")
)
