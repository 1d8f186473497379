package api

import (
	"context"
	"fleet-dashboard-service/validation"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"net/http"
	"strconv"
)

// ShipmentsByUser lists the shipments a user sent.
func (c *Client) ShipmentsByUser(ctx context.Context, userID string) ([]Shipment, error) {
	return list[Shipment](ctx, c, "/shipments/shipments/user/"+userID)
}

// ReceivedShipments lists the shipments addressed to a user.
func (c *Client) ReceivedShipments(ctx context.Context, userID string) ([]Shipment, error) {
	return list[Shipment](ctx, c, "/shipments/shipments/received/"+userID)
}

func (c *Client) AddressesByUser(ctx context.Context, userID string) ([]Address, error) {
	return list[Address](ctx, c, "/address/address/user/"+userID)
}

// FinishRoute records the total travel time ("HH:MM:SS") of a route.
func (c *Client) FinishRoute(ctx context.Context, routeID int64, travelTime string) error {
	return c.Routes().Update(ctx, routeID, map[string]string{"travel_time": travelTime})
}

func (c *Client) Vehicle(ctx context.Context, id int64) (*Vehicle, error) {
	body, err := c.DoRequest(ctx, http.MethodGet, fmt.Sprintf("/vehicles/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decode[Vehicle](body)
}

// vehicleFields flattens a vehicle into form fields. Money and weight go out as
// plain decimals, without the display symbol or separators.
func vehicleFields(v *Vehicle) map[string]string {
	return map[string]string{
		"placa":     v.Plate,
		"marca":     v.Brand,
		"modelo":    v.Model,
		"capacidad": v.Capacity,
		"ton":       strconv.FormatFloat(v.Ton.Float64(), 'f', 2, 64),
		"year":      v.Year,
		"uso":       v.Use,
		"precio":    strconv.FormatFloat(v.Price.Float64(), 'f', 2, 64),
	}
}

// CreateVehicle uploads a vehicle together with its RUV document, which must be
// a PDF of at most 2 MiB. Nothing is sent when the document is missing or invalid.
func (c *Client) CreateVehicle(ctx context.Context, v *Vehicle, ruv *File, progress ProgressFunc) error {
	ruv, err := attach(nil, ruv, "ruv", true)
	if err != nil {
		return err
	}
	_, err = c.Upload(ctx, http.MethodPost, "/vehicles/create", vehicleFields(v), ruv, progress)
	return err
}

// UpdateVehicle replaces a vehicle; ruv may be nil to keep the stored document.
func (c *Client) UpdateVehicle(ctx context.Context, id int64, v *Vehicle, ruv *File, progress ProgressFunc) error {
	ruv, err := attach(nil, ruv, "ruv", false)
	if err != nil {
		return err
	}
	_, err = c.Upload(ctx, http.MethodPut, fmt.Sprintf("/vehicles/vehicles/update/%d", id), vehicleFields(v), ruv, progress)
	return err
}

func driverFields(d *Driver) map[string]string {
	return map[string]string{
		"driver_name":                    d.Name,
		"driver_lastname":                d.Lastname,
		"driver_identification_type":     d.IdentificationType,
		"driver_identification":          d.Identification,
		"driver_email":                   d.Email,
		"driver_phone":                   d.Phone,
		"driver_license_type":            d.LicenseTypes,
		"driver_nationality":             d.Nationality,
		"driver_birthdate":               d.Birthdate,
		"driver_license_issue_date":      d.LicenseIssueDate,
		"driver_license_expiration_date": d.LicenseExpirationDate,
		"driver_control_number":          d.ControlNumber,
	}
}

// CreateDriver registers a driver with the license and identification PDFs.
// Both documents are required.
func (c *Client) CreateDriver(ctx context.Context, d *Driver, license, identification *File, progress ProgressFunc) error {
	err := validation.Required(nil,
		"driver_identification_type", d.IdentificationType,
		"driver_license_type", d.LicenseTypes,
	)
	license, err = attach(err, license, "driver_license_file", true)
	identification, err = attach(err, identification, "driver_identification_file", true)
	if err != nil {
		return err
	}
	_, err = c.UploadFiles(ctx, http.MethodPost, "/drivers/drivers/create", driverFields(d), []*File{license, identification}, progress)
	return err
}

// UpdateDriver replaces a driver; either document may be nil to keep the stored one.
func (c *Client) UpdateDriver(ctx context.Context, id int64, d *Driver, license, identification *File, progress ProgressFunc) error {
	license, err := attach(nil, license, "driver_license_file", false)
	identification, err = attach(err, identification, "driver_identification_file", false)
	if err != nil {
		return err
	}
	_, err = c.UploadFiles(ctx, http.MethodPut, fmt.Sprintf("/drivers/drivers/update/%d", id), driverFields(d), []*File{license, identification}, progress)
	return err
}

// attach names f after field and checks it, appending any problem to result.
func attach(result error, f *File, field string, required bool) (*File, error) {
	if f != nil {
		named := *f
		named.Field = field
		f = &named
	} else if required {
		f = &File{Field: field}
	}
	checked, err := pdfAttachment(f, required)
	if err != nil {
		return nil, multierror.Append(result, err)
	}
	return checked, result
}

// CreatePackage pre-alerts a package, with its invoice when one is attached.
func (c *Client) CreatePackage(ctx context.Context, p *Package, weightUnit string, invoice *File) error {
	fields := map[string]string{
		"package_weight":      p.Weight + " " + weightUnit,
		"package_description": p.Description,
		"package_value":       strconv.FormatFloat(p.Value.Float64(), 'f', 2, 64),
		"package_store":       p.Store,
		"package_status":      p.Status,
		"user_id":             strconv.FormatInt(p.UserID, 10),
	}
	if fields["package_status"] == "" {
		fields["package_status"] = "Pending"
	}
	_, err := c.Upload(ctx, http.MethodPost, "/packages/packages/create", fields, invoice, nil)
	return err
}

func (c *Client) Inspections(ctx context.Context) ([]Inspection, error) {
	return list[Inspection](ctx, c, "/vehicle-inspections/all")
}

func (c *Client) InspectionsByVehicle(ctx context.Context, vehicleID int64) ([]Inspection, error) {
	return list[Inspection](ctx, c, fmt.Sprintf("/vehicle-inspections/by-vehicle/%d", vehicleID))
}

func (c *Client) CreateInspection(ctx context.Context, in *Inspection) error {
	_, err := c.DoRequest(ctx, http.MethodPost, "/vehicle-inspections", in)
	return err
}

// MileagesByVehicle lists the odometer readings recorded for a vehicle.
func (c *Client) MileagesByVehicle(ctx context.Context, vehicleID int64) ([]Mileage, error) {
	return list[Mileage](ctx, c, fmt.Sprintf("/milages/milages/vehicle/%d", vehicleID))
}

func (c *Client) WorkshopReportsByVehicle(ctx context.Context, vehicleID int64) ([]WorkshopReport, error) {
	return list[WorkshopReport](ctx, c, fmt.Sprintf("/workshop-reports/workshop-reports/vehicle/%d", vehicleID))
}

func (c *Client) DeleteInspection(ctx context.Context, id int64) error {
	_, err := c.DoRequest(ctx, http.MethodDelete, fmt.Sprintf("/vehicle-inspections/%d", id), nil)
	return err
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	body, err := c.DoRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	items, err := decode[[]T](body)
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// CreateRoute opens a route; the response carries the id used to finish it.
func (c *Client) CreateRoute(ctx context.Context, r *Route) (*Route, error) {
	return c.Routes().Create(ctx, r)
}
