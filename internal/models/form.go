package models

import (
	"fmt"
	"strconv"
)

// Form входные данные одного типа QR кода.
// Набор вариантов закрыт: URLForm, WiFiForm, VCardForm, EmailForm,
// PhoneForm, SMSForm, EventForm.
type Form interface {
	// Type returns the tag of the variant.
	Type() QRType
	// Fields flattens the form into the record's source map.
	Fields() map[string]string
}

// WiFi encryption values
const (
	EncryptionWPA    = "WPA"
	EncryptionWEP    = "WEP"
	EncryptionNoPass = "nopass"
)

// URLForm произвольный URL или текст, кодируется как есть
type URLForm struct {
	URL string
}

// WiFiForm учетные данные WiFi сети
type WiFiForm struct {
	SSID       string
	Password   string
	Encryption string // Encryption WPA, WEP или nopass; пусто означает WPA
	Hidden     bool
}

// VCardForm контакт в формате vCard 3.0
type VCardForm struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Company   string
	JobTitle  string
	Website   string
	Address   string
}

// EmailForm ссылка mailto
type EmailForm struct {
	Email   string
	Subject string
	Body    string
}

// PhoneForm ссылка tel
type PhoneForm struct {
	Phone string
}

// SMSForm ссылка sms
type SMSForm struct {
	Phone   string
	Message string
}

// EventForm событие календаря (iCalendar VEVENT).
// Даты в формате ISO 8601 или datetime-local ("2024-01-01T09:00").
type EventForm struct {
	Title       string
	StartDate   string
	EndDate     string
	Location    string
	Description string
}

func (URLForm) Type() QRType   { return TypeURL }
func (WiFiForm) Type() QRType  { return TypeWiFi }
func (VCardForm) Type() QRType { return TypeVCard }
func (EmailForm) Type() QRType { return TypeEmail }
func (PhoneForm) Type() QRType { return TypePhone }
func (SMSForm) Type() QRType   { return TypeSMS }
func (EventForm) Type() QRType { return TypeEvent }

func (f URLForm) Fields() map[string]string {
	return compact(map[string]string{"url": f.URL})
}

func (f WiFiForm) Fields() map[string]string {
	return compact(map[string]string{
		"ssid":       f.SSID,
		"password":   f.Password,
		"encryption": f.Encryption,
		"hidden":     strconv.FormatBool(f.Hidden),
	})
}

func (f VCardForm) Fields() map[string]string {
	return compact(map[string]string{
		"firstName": f.FirstName,
		"lastName":  f.LastName,
		"phone":     f.Phone,
		"email":     f.Email,
		"company":   f.Company,
		"jobTitle":  f.JobTitle,
		"website":   f.Website,
		"address":   f.Address,
	})
}

func (f EmailForm) Fields() map[string]string {
	return compact(map[string]string{"email": f.Email, "subject": f.Subject, "body": f.Body})
}

func (f PhoneForm) Fields() map[string]string {
	return compact(map[string]string{"phone": f.Phone})
}

func (f SMSForm) Fields() map[string]string {
	return compact(map[string]string{"phone": f.Phone, "message": f.Message})
}

func (f EventForm) Fields() map[string]string {
	return compact(map[string]string{
		"title":       f.Title,
		"startDate":   f.StartDate,
		"endDate":     f.EndDate,
		"location":    f.Location,
		"description": f.Description,
	})
}

// ParseForm восстанавливает форму из source полей записи.
// Поля не валидируются: они сохранялись как есть.
func ParseForm(t QRType, fields map[string]string) (Form, error) {
	get := func(key string) string { return fields[key] }

	switch t {
	case TypeURL, TypeBatch:
		return URLForm{URL: get("url")}, nil
	case TypeWiFi:
		hidden, _ := strconv.ParseBool(get("hidden"))
		return WiFiForm{
			SSID:       get("ssid"),
			Password:   get("password"),
			Encryption: get("encryption"),
			Hidden:     hidden,
		}, nil
	case TypeVCard:
		return VCardForm{
			FirstName: get("firstName"),
			LastName:  get("lastName"),
			Phone:     get("phone"),
			Email:     get("email"),
			Company:   get("company"),
			JobTitle:  get("jobTitle"),
			Website:   get("website"),
			Address:   get("address"),
		}, nil
	case TypeEmail:
		return EmailForm{Email: get("email"), Subject: get("subject"), Body: get("body")}, nil
	case TypePhone:
		return PhoneForm{Phone: get("phone")}, nil
	case TypeSMS:
		return SMSForm{Phone: get("phone"), Message: get("message")}, nil
	case TypeEvent:
		return EventForm{
			Title:       get("title"),
			StartDate:   get("startDate"),
			EndDate:     get("endDate"),
			Location:    get("location"),
			Description: get("description"),
		}, nil
	default:
		return nil, fmt.Errorf("unknown QR type: %s", t)
	}
}

// compact drops empty values so the persisted source map stays small
func compact(m map[string]string) map[string]string {
	for k, v := range m {
		if v == "" {
			delete(m, k)
		}
	}
	return m
}
