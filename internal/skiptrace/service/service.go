// Package service provides the skip trace lookup contract: build a request
// from a contact, call SkipEngine and project the answer into a row result.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skiptrace/internal/skiptrace/address"
	"skiptrace/internal/skiptrace/transport"
	"skiptrace/platform/apperr"
	"skiptrace/platform/logger"
	"skiptrace/platform/phone"

	"github.com/google/uuid"
)

// Sender is anything that can answer a lookup request. The HTTP client is
// the production implementation; tests substitute their own.
type Sender interface {
	Send(ctx context.Context, req transport.LookupRequest) (*transport.LookupResponse, error)
}

// Outcome classifies how a lookup resolved.
type Outcome string

const (
	OutcomeFound        Outcome = "found"
	OutcomeNotFound     Outcome = "not_found"
	OutcomeUnauthorized Outcome = "unauthorized"
	OutcomeFailed       Outcome = "failed"
)

// Service performs lookups for single contacts.
type Service struct {
	sender Sender
	log    *logger.Logger
}

// New creates a new skip trace service.
func New(sender Sender, log *logger.Logger) *Service {
	return &Service{
		sender: sender,
		log:    log,
	}
}

// BuildRequest maps a contact to the SkipEngine wire shape.
func BuildRequest(c transport.Contact) transport.LookupRequest {
	normalized := address.Normalize(c)
	return transport.LookupRequest{
		FName:    c.FirstName,
		LName:    c.LastName,
		Address1: c.Address,
		City:     c.City,
		State:    normalized.StateCode,
		Zip:      normalized.Zip5,
	}
}

// Lookup returns the contact details SkipEngine knows for c. Every failure
// degrades to the empty result.
func (s *Service) Lookup(ctx context.Context, c transport.Contact) transport.ContactResult {
	result, _ := s.LookupDetailed(ctx, c)
	return result
}

// LookupDetailed is Lookup plus the outcome class, for callers that report on it.
func (s *Service) LookupDetailed(ctx context.Context, c transport.Contact) (result transport.ContactResult, outcome Outcome) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, logger.RequestIDKey, uuid.NewString())
	log := s.log.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("skiptrace lookup panicked", "panic", fmt.Sprint(r))
			result, outcome = transport.ContactResult{}, OutcomeFailed
		}
	}()

	start := time.Now()
	resp, err := s.sender.Send(ctx, BuildRequest(c))
	latency := float64(time.Since(start).Milliseconds())

	if err != nil {
		outcome = classify(err)
		log.LookupOutcome(string(outcome), latency)
		if outcome != OutcomeNotFound {
			log.LookupError(string(outcome), upstreamStatus(err), err)
		}
		return transport.ContactResult{}, outcome
	}

	result = Project(resp)
	log.LookupOutcome(string(OutcomeFound), latency)
	log.Debug("skiptrace extracted",
		"mobilePhone", phone.Mask(result.MobilePhone),
		"landline", phone.Mask(result.Landline),
		"email", phone.MaskEmail(result.Email),
	)
	return result, OutcomeFound
}

func upstreamStatus(err error) int {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

func classify(err error) Outcome {
	switch apperr.GetKind(err) {
	case apperr.KindNotFound:
		return OutcomeNotFound
	case apperr.KindUnauthorized:
		return OutcomeUnauthorized
	default:
		return OutcomeFailed
	}
}
