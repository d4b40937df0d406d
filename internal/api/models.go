package api

import (
	"time"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// BranchDTO is the request and response body of the branch endpoints.
type BranchDTO struct {
	ID   string `json:"id,omitempty"`
	Code string `json:"code"         validate:"required,max=32"`
	Name string `json:"name"         validate:"required,max=128"`
}

// InterestRateDTO is the request and response body of the interest rate endpoints.
type InterestRateDTO struct {
	ID           int        `json:"id,omitempty"`
	Name         string     `json:"name"            validate:"required,max=128"`
	InterestRate *RateValue `json:"interestRate"    validate:"required"`
	State        string     `json:"state,omitempty" validate:"omitempty,oneof=ACT INA"`
	Start        *time.Time `json:"start,omitempty"`
	End          *time.Time `json:"end,omitempty"`
}

// RateValue is a decimal that is written to JSON as a bare number. Both
// numbers and quoted strings are accepted on input.
type RateValue struct {
	decimal.Decimal
}

// MarshalJSON implements json.Marshaler.
func (v RateValue) MarshalJSON() ([]byte, error) {
	return []byte(v.Decimal.String()), nil
}

// ProductAccountDTO is the request and response body of the product account endpoints.
type ProductAccountDTO struct {
	ID           string     `json:"id,omitempty"           validate:"omitempty,max=64"`
	Name         string     `json:"name"                   validate:"required,max=128"`
	State        string     `json:"state,omitempty"        validate:"omitempty,oneof=ACT INA"`
	CreationDate *time.Time `json:"creationDate,omitempty"`
}

// The mappers below are field-for-field and total: a nil input maps to a
// nil entity or a zero DTO, and zero timestamps map to nil pointers.

func toBranch(dto *BranchDTO) *domain.Branch {
	if dto == nil {
		return nil
	}
	return &domain.Branch{
		ID:   dto.ID,
		Code: dto.Code,
		Name: dto.Name,
	}
}

func fromBranch(b *domain.Branch) BranchDTO {
	if b == nil {
		return BranchDTO{}
	}
	return BranchDTO{
		ID:   b.ID,
		Code: b.Code,
		Name: b.Name,
	}
}

func toInterestRate(dto *InterestRateDTO) *domain.InterestRate {
	if dto == nil {
		return nil
	}
	rate := &domain.InterestRate{
		ID:    dto.ID,
		Name:  dto.Name,
		State: domain.State(dto.State),
	}
	if dto.InterestRate != nil {
		rate.Rate = dto.InterestRate.Decimal
	}
	if dto.Start != nil {
		rate.Start = *dto.Start
	}
	if dto.End != nil {
		end := *dto.End
		rate.End = &end
	}
	return rate
}

func fromInterestRate(r *domain.InterestRate) InterestRateDTO {
	if r == nil {
		return InterestRateDTO{}
	}
	dto := InterestRateDTO{
		ID:           r.ID,
		Name:         r.Name,
		InterestRate: &RateValue{Decimal: r.Rate},
		State:        r.State.String(),
		Start:        timePtr(r.Start),
	}
	if r.End != nil {
		dto.End = timePtr(*r.End)
	}
	return dto
}

func toProductAccount(dto *ProductAccountDTO) *domain.ProductAccount {
	if dto == nil {
		return nil
	}
	account := &domain.ProductAccount{
		ID:    dto.ID,
		Name:  dto.Name,
		State: domain.State(dto.State),
	}
	if dto.CreationDate != nil {
		account.CreationDate = *dto.CreationDate
	}
	return account
}

func fromProductAccount(a *domain.ProductAccount) ProductAccountDTO {
	if a == nil {
		return ProductAccountDTO{}
	}
	return ProductAccountDTO{
		ID:           a.ID,
		Name:         a.Name,
		State:        a.State.String(),
		CreationDate: timePtr(a.CreationDate),
	}
}

// timePtr returns nil for the zero time.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
