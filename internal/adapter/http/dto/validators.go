package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// personal_sign signatures are r || s || v, 65 bytes.
var signatureRe = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators adds the evm_address and evm_signature tags to v.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("evm_address", validateEVMAddress)
	_ = v.RegisterValidation("evm_signature", validateEVMSignature)
}

// validateEVMAddress requires a 0x-prefixed 20 byte hex address. Checksum
// casing is not enforced.
func validateEVMAddress(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	return strings.HasPrefix(raw, "0x") && common.IsHexAddress(raw)
}

func validateEVMSignature(fl validator.FieldLevel) bool {
	return signatureRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
