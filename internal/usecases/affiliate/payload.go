package affiliate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/normalize"
	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-sales-api/pkg/utils"
)

// normalizePayload valida o cadastro e devolve os campos já formatados
func normalizePayload(input domain.AffiliateInput) (*domain.Affiliate, error) {
	affiliate := &domain.Affiliate{
		Name:         strings.TrimSpace(input.Name),
		Instagram:    strings.TrimSpace(input.Instagram),
		Email:        strings.TrimSpace(input.Email),
		Coupon:       normalize.Coupon(input.Coupon),
		LinkedUserID: input.LinkedUserID,
		Address: domain.Address{
			Number:     strings.TrimSpace(input.Address.Number),
			Complement: strings.TrimSpace(input.Address.Complement),
			Street:     strings.TrimSpace(input.Address.Street),
			District:   strings.TrimSpace(input.Address.District),
			City:       strings.TrimSpace(input.Address.City),
			State:      strings.ToUpper(strings.TrimSpace(input.Address.State)),
		},
	}

	missing := make([]string, 0, 2)
	if affiliate.Name == "" {
		missing = append(missing, "name")
	}
	if affiliate.Instagram == "" {
		missing = append(missing, "instagram")
	}
	if len(missing) > 0 {
		return nil, &AffiliateError{
			Err:     ErrInvalidPayload,
			Code:    apiErrors.ErrMissingRequiredData,
			Details: "Campos obrigatorios faltando.",
			Fields:  missing,
		}
	}

	if !strings.HasPrefix(affiliate.Instagram, "@") {
		affiliate.Instagram = "@" + affiliate.Instagram
	}

	var err error
	if affiliate.TaxID, err = formatTaxID(input.TaxID); err != nil {
		return nil, newValidationError("CPF invalido.")
	}
	if affiliate.ContactPhone, err = formatContactPhone(input.ContactPhone); err != nil {
		return nil, newValidationError("Contato deve conter DDD + numero (10 ou 11 digitos).")
	}
	if affiliate.Address.PostalCode, err = formatPostalCode(input.Address.PostalCode); err != nil {
		return nil, newValidationError("CEP invalido.")
	}
	if affiliate.CommissionRate, err = parseCommissionRate(input.CommissionRate); err != nil {
		return nil, newValidationError("Comissao deve estar entre 0 e 100.")
	}

	return affiliate, nil
}

var errInvalidDigits = errors.New("quantidade de digitos invalida")

func onlyDigits(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}

// formatTaxID valida os dígitos verificadores do CPF e formata como 000.000.000-00
func formatTaxID(raw string) (string, error) {
	digits := onlyDigits(raw)
	if digits == "" {
		return "", nil
	}

	if len(digits) != 11 || strings.Count(digits, digits[:1]) == 11 {
		return "", errInvalidDigits
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') || checkDigit(digits, 10) != int(digits[10]-'0') {
		return "", errInvalidDigits
	}

	return fmt.Sprintf("%s.%s.%s-%s", digits[:3], digits[3:6], digits[6:9], digits[9:]), nil
}

func checkDigit(digits string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(digits[i]-'0') * (length + 1 - i)
	}

	result := (sum * 10) % 11
	if result == 10 {
		return 0
	}
	return result
}

// formatContactPhone formata DDD + número como (DD) 99999-9999 ou (DD) 9999-9999
func formatContactPhone(raw string) (string, error) {
	digits := onlyDigits(raw)
	if digits == "" {
		return "", nil
	}

	if len(digits) != 10 && len(digits) != 11 {
		return "", errInvalidDigits
	}

	prefix := len(digits) - 4

	return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:prefix], digits[prefix:]), nil
}

func formatPostalCode(raw string) (string, error) {
	digits := onlyDigits(raw)
	if digits == "" {
		return "", nil
	}

	if len(digits) != 8 {
		return "", errInvalidDigits
	}

	return digits[:5] + "-" + digits[5:], nil
}

func parseCommissionRate(raw any) (float64, error) {
	rate, err := normalize.ParseCurrency(raw)
	if errors.Is(err, normalize.ErrEmptyValue) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if rate < 0 || rate > 100 {
		return 0, normalize.ErrInvalidNumber
	}

	return utils.RoundWithTwoDecimalPlace(rate), nil
}
