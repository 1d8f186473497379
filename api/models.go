package api

import (
	"fmt"
	"github.com/goccy/go-json"
	"strconv"
	"strings"
	"time"
)

// Decimal is a float the backend sometimes sends as a string ("12.50").
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Decimal(val)
	case string:
		val = strings.TrimSpace(val)
		if val == "" {
			*d = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("Decimal: cannot parse %q: %w", val, err)
		}
		*d = Decimal(parsed)
	default:
		return fmt.Errorf("Decimal: unexpected type %T", v)
	}
	return nil
}

func (d Decimal) Float64() float64 {
	return float64(d)
}

// ID is a foreign key the backend sends either as a number or as a string.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	var d Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*id = ID(d)
	return nil
}

type Province struct {
	ID   int64  `json:"id"`
	Name string `json:"province_name"`
}

type Shipment struct {
	ID                int64  `json:"id,omitempty"`
	Code              string `json:"shipment_code"`
	Date              string `json:"shipment_date"`
	Status            string `json:"shipment_status"`
	Origin            ID     `json:"shipment_origin"`
	Destination       ID     `json:"shipment_destination"`
	SenderName        string `json:"shipment_sender_name"`
	SenderPhone       string `json:"shipment_sender_phonenumber,omitempty"`
	SenderEmail       string `json:"shipment_sender_email,omitempty"`
	ReceiverName      string `json:"shipment_receiver_name,omitempty"`
	ReceiverPhone     string `json:"shipment_receiver_phonenumber,omitempty"`
	Description       string `json:"shipment_description"`
	UserID            int64  `json:"shipment_user,omitempty"`
	AssignedUserEmail string `json:"shipment_assigned_user,omitempty"`
}

type Package struct {
	ID          int64   `json:"id,omitempty"`
	Weight      string  `json:"package_weight"`
	Description string  `json:"package_description"`
	Value       Decimal `json:"package_value"`
	Store       string  `json:"package_store"`
	Status      string  `json:"package_status"`
	UserID      int64   `json:"user_id"`
	Invoice     string  `json:"invoice,omitempty"`
}

type Product struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"product_name"`
	Description string  `json:"product_description"`
	Price       Decimal `json:"product_price"`
}

type Vehicle struct {
	ID         int64   `json:"id,omitempty"`
	Plate      string  `json:"placa"`
	Brand      string  `json:"marca"`
	Model      string  `json:"modelo"`
	Capacity   string  `json:"capacidad"`
	Ton        Decimal `json:"ton"`
	Year       string  `json:"year"`
	Use        string  `json:"uso"`
	Price      Decimal `json:"precio"`
	RUV        string  `json:"ruv,omitempty"`
	Owner      string  `json:"propietario,omitempty"`
	PlateMonth string  `json:"mes_de_placa,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// Created is when the vehicle was registered, zero when unknown.
func (v Vehicle) Created() time.Time {
	return ParseDate(v.CreatedAt)
}

type Driver struct {
	ID                    int64  `json:"id,omitempty"`
	Name                  string `json:"driver_name"`
	Lastname              string `json:"driver_lastname"`
	IdentificationType    string `json:"driver_identification_type"`
	Identification        string `json:"driver_identification"`
	Email                 string `json:"driver_email"`
	Phone                 string `json:"driver_phone"`
	LicenseTypes          string `json:"driver_license_type"`
	Nationality           string `json:"driver_nationality"`
	Birthdate             string `json:"driver_birthdate"`
	LicenseIssueDate      string `json:"driver_license_issue_date"`
	LicenseExpirationDate string `json:"driver_license_expiration_date"`
	ControlNumber         string `json:"driver_control_number"`
	LicenseFile           string `json:"driver_license_file,omitempty"`
	IdentificationFile    string `json:"driver_identification_file,omitempty"`
}

// Customer is a record from the backend's clients resource.
type Customer struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"client_name"`
	Lastname string `json:"client_lastname"`
	Email    string `json:"client_email"`
	Phone    string `json:"client_phonenumber"`
}

type Address struct {
	ID          int64  `json:"id,omitempty"`
	UserID      int64  `json:"user_id"`
	ProvinceID  int64  `json:"province_id"`
	Description string `json:"address_description"`
	Phone       string `json:"address_phonenumber"`
}

type Route struct {
	ID             int64   `json:"id,omitempty"`
	VehicleID      int64   `json:"vehicle_id"`
	UserID         int64   `json:"user_id"`
	Name           string  `json:"route_name"`
	TravelTime     string  `json:"travel_time,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
	EndAt          *string `json:"end_at,omitempty"`
	Plate          string  `json:"placa,omitempty"`
	DriverName     string  `json:"driver_name,omitempty"`
	DriverLastname string  `json:"driver_lastname,omitempty"`
}

type Mileage struct {
	ID        int64   `json:"id,omitempty"`
	VehicleID int64   `json:"vehicle_id"`
	Mileage   Decimal `json:"mileage"`
	Date      string  `json:"date"`
}

type Observation struct {
	ID           int64  `json:"id,omitempty"`
	VehicleID    int64  `json:"vehicle_id"`
	LicensePlate string `json:"vehicle_license_plate"`
	Visitor      string `json:"visitor_name,omitempty"`
	Description  string `json:"observation"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Inspection is an entry ("entrada") or exit ("salida") check of a vehicle.
type Inspection struct {
	ID          int64   `json:"id,omitempty"`
	VehicleID   int64   `json:"vehicle_id"`
	Plate       string  `json:"placa,omitempty"`
	Kind        string  `json:"tipo"`
	Date        string  `json:"fecha,omitempty"`
	Time        string  `json:"hora,omitempty"`
	Mileage     Decimal `json:"kilometraje"`
	FuelLevel   string  `json:"nivel_combustible"`
	Notes       string  `json:"observaciones,omitempty"`
	Accessories any     `json:"accesorios,omitempty"`
	Lights      any     `json:"luces_sistemas,omitempty"`
}

func (i Inspection) On() time.Time {
	return ParseDate(i.Date)
}

// ExitOrder authorizes a vehicle and its driver to leave the yard for a client.
type ExitOrder struct {
	ID             int64  `json:"id,omitempty"`
	VehicleID      int64  `json:"vehicle_id"`
	DriverID       int64  `json:"driver_id"`
	ClientID       int64  `json:"client_id"`
	ExitDate       string `json:"exit_date"`
	EntryDate      string `json:"entry_date"`
	ExitTime       string `json:"exit_time"`
	EntryTime      string `json:"entry_time"`
	ExitReason     string `json:"exit_reason"`
	CreatedAt      string `json:"created_at,omitempty"`
	Plate          string `json:"placa,omitempty"`
	DriverName     string `json:"driver_name,omitempty"`
	DriverLastname string `json:"driver_lastname,omitempty"`
	ClientName     string `json:"client_name,omitempty"`
}

// Exit and Entry combine the date and time fields; zero when either is unreadable.
func (o ExitOrder) Exit() time.Time {
	return combine(o.ExitDate, o.ExitTime)
}

func (o ExitOrder) Entry() time.Time {
	return combine(o.EntryDate, o.EntryTime)
}

type WorkshopReport struct {
	ID          int64  `json:"id,omitempty"`
	VehicleID   int64  `json:"vehicle_id"`
	ReportDate  string `json:"report_date"`
	ReportTime  string `json:"report_time"`
	Description string `json:"description"`
}

type Part struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"part_name"`
	Quantity int64   `json:"part_quantity"`
	Price    Decimal `json:"part_price"`
}

type User struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"user_firstname"`
	LastName  string `json:"user_lastname"`
	Email     string `json:"user_email"`
	Phone     string `json:"user_phonenumber"`
	CreatedAt string `json:"created_at,omitempty"`
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// ParseDate reads the timestamp and date shapes the backend returns. It
// returns the zero time for anything else.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func combine(date, clock string) time.Time {
	day := ParseDate(date)
	if day.IsZero() {
		return day
	}
	var h, m, sec int
	if _, err := fmt.Sscanf(strings.TrimSpace(clock), "%d:%d", &h, &m); err != nil {
		return time.Time{}
	}
	if parts := strings.Split(clock, ":"); len(parts) == 3 {
		sec, _ = strconv.Atoi(strings.TrimSpace(parts[2]))
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, sec, 0, day.Location())
}
