// Package share builds contact links for a client. It only formats URLs;
// opening them is left to the caller's platform.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/diewo77/oficina/i18n"
)

const countryCode = "+55"

// ErrNoPhone is returned when the record carries no phone digits.
var ErrNoPhone = errors.New("phone number not provided")

// Links holds the app deep link and the web fallback for one conversation.
type Links struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	App     string `json:"app"`
	Web     string `json:"web"`
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// NormalizePhone returns raw in international form. Numbers that already
// carry an area code (10 or 11 digits) get the country code; local numbers
// (8 or 9 digits) get areaCode too. Other lengths are returned as bare digits.
func NormalizePhone(raw, areaCode string) (string, error) {
	d := digits(raw)
	switch len(d) {
	case 0:
		return "", ErrNoPhone
	case 10, 11:
		return countryCode + d, nil
	case 8, 9:
		return countryCode + digits(areaCode) + d, nil
	default:
		return d, nil
	}
}

// escape encodes s for a query value, spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// WhatsAppLinks builds the greeting links for a client in lang.
func WhatsAppLinks(nome, telefone, areaCode, lang string) (Links, error) {
	phone, err := NormalizePhone(telefone, areaCode)
	if err != nil {
		return Links{}, err
	}
	msg := fmt.Sprintf(i18n.T(lang, "share.greeting"), nome)
	text := escape(msg)
	return Links{
		Phone:   phone,
		Message: msg,
		App:     "whatsapp://send?phone=" + phone + "&text=" + text,
		Web:     "https://wa.me/" + digits(phone) + "?text=" + text,
	}, nil
}
