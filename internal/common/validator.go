package common

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate là instance validator dùng chung cho toàn bộ DTO
var Validate = validator.New()

// ValidateStruct kiểm tra struct theo các tag validate và trả về lỗi hệ thống
// (VAL_001) kèm danh sách field vi phạm trong Details.
func ValidateStruct(s interface{}) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ErrInvalidInput
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("field '%s' không thỏa điều kiện '%s'", fe.Field(), fe.Tag()))
	}

	return NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, details)
}
