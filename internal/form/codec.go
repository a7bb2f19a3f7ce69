// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"strconv"
	"time"

	"github.com/MKhiriev/study-spots/internal/links"
	"github.com/MKhiriev/study-spots/models"
)

// Encode reads every control present on f into a spot record.
//
// Feature checkboxes become true/false, controls missing from the form are
// left out of the record. The parking toggles are collapsed into
// ParkingType with the fixed priority free, paid, none; with none checked it
// stays [models.ParkingUnset]. Links is the hidden field as kept by the link
// list. Encode does not modify f.
func Encode(f *Form) models.Spot {
	var spot models.Spot

	for _, c := range f.controls {
		if IsParkingToggle(c.Name) {
			continue
		}

		switch c.Name {
		case FieldID:
			spot.ID = models.SpotID(c.Value)
		case FieldName:
			spot.Name = c.Value
		case FieldAddress:
			spot.Address = c.Value
		case FieldSpotType:
			spot.SpotType = c.Value
		case FieldHours:
			spot.Hours = models.String(c.Value)
		case FieldPhoneNumber:
			spot.PhoneNumber = models.String(c.Value)
		case FieldImageURL:
			spot.ImageURL = models.String(c.Value)
		case FieldLinks:
			spot.Links = c.Value
		case FieldHasWifi:
			spot.HasWifi = models.Bool(c.Checked)
		case FieldHasOutlets:
			spot.HasOutlets = models.Bool(c.Checked)
		case FieldHasIndoorSeating:
			spot.HasIndoorSeating = models.Bool(c.Checked)
		case FieldHasOutdoorSeating:
			spot.HasOutdoorSeating = models.Bool(c.Checked)
		case FieldHasRestroom:
			spot.HasRestroom = models.Bool(c.Checked)
		case FieldAcceptsCreditCard:
			spot.AcceptsCreditCard = models.Bool(c.Checked)
		}
	}

	spot.ParkingType = encodeParking(f)
	return spot
}

func encodeParking(f *Form) models.ParkingType {
	switch {
	case f.Checked(FieldFreeParking):
		return models.ParkingFree
	case f.Checked(FieldPaidParking):
		return models.ParkingPaid
	case f.Checked(FieldNoParking):
		return models.ParkingNone
	default:
		return models.ParkingUnset
	}
}

// Decode populates f from spot. list, when not nil, is reset first and then
// repopulated from spot.Links; its change hook is expected to keep the hidden
// links field current. With a nil list the hidden field is written directly.
//
// Checkboxes take the entity's boolean (nil unchecks), other controls take
// the entity's value or "" when absent. Exactly the toggle matching
// ParkingType is checked; null or unknown values uncheck all three.
// Controls without a matching entity field are left alone. Decode never fails:
// a malformed links value yields an empty list.
func Decode(f *Form, spot models.Spot, list *links.List) {
	if list != nil {
		list.Reset()
	}

	for _, c := range f.controls {
		if IsParkingToggle(c.Name) {
			continue
		}

		if c.Name == FieldLinks {
			if list != nil {
				list.Deserialize(spot.Links)
				c.Value = list.Serialize()
			} else {
				var tmp links.List
				tmp.Deserialize(spot.Links)
				c.Value = tmp.Serialize()
			}
			continue
		}

		value, ok := fieldValue(spot, c.Name)
		if !ok {
			continue
		}

		if c.Kind == KindCheckbox {
			c.Checked = value == "true"
		} else {
			c.Value = value
		}
	}

	decodeParking(f, spot.ParkingType)
}

func decodeParking(f *Form, p models.ParkingType) {
	want := ""
	switch p {
	case models.ParkingFree:
		want = FieldFreeParking
	case models.ParkingPaid:
		want = FieldPaidParking
	case models.ParkingNone:
		want = FieldNoParking
	}

	for _, toggle := range ParkingToggles {
		f.SetChecked(toggle, toggle == want)
	}
}

// fieldValue returns the textual value of the entity field called name.
// Booleans are "true" or "false", absent optional values are "".
func fieldValue(spot models.Spot, name string) (string, bool) {
	switch name {
	case FieldID:
		return spot.ID.String(), true
	case FieldName:
		return spot.Name, true
	case FieldAddress:
		return spot.Address, true
	case FieldSpotType:
		return spot.SpotType, true
	case FieldHours:
		return models.StringValue(spot.Hours), true
	case FieldPhoneNumber:
		return models.StringValue(spot.PhoneNumber), true
	case FieldImageURL:
		return models.StringValue(spot.ImageURL), true
	case FieldHasWifi:
		return formatBool(spot.HasWifi), true
	case FieldHasOutlets:
		return formatBool(spot.HasOutlets), true
	case FieldHasIndoorSeating:
		return formatBool(spot.HasIndoorSeating), true
	case FieldHasOutdoorSeating:
		return formatBool(spot.HasOutdoorSeating), true
	case FieldHasRestroom:
		return formatBool(spot.HasRestroom), true
	case FieldAcceptsCreditCard:
		return formatBool(spot.AcceptsCreditCard), true
	case "createdAt":
		return formatTime(spot.CreatedAt), true
	case "updatedAt":
		return formatTime(spot.UpdatedAt), true
	default:
		return "", false
	}
}

func formatBool(b *bool) string {
	return strconv.FormatBool(models.BoolValue(b))
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
