// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

// Field names of the study spot form. They match the JSON names of
// [models.Spot] except for the three parking toggles.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldSpotType    = "spotType"
	FieldHours       = "hours"
	FieldPhoneNumber = "phoneNumber"
	FieldImageURL    = "imageUrl"

	FieldHasWifi           = "hasWifi"
	FieldHasOutlets        = "hasOutlets"
	FieldHasIndoorSeating  = "hasIndoorSeating"
	FieldHasOutdoorSeating = "hasOutdoorSeating"
	FieldHasRestroom       = "hasRestroom"
	FieldAcceptsCreditCard = "acceptsCreditCard"

	FieldFreeParking = "freeParking"
	FieldPaidParking = "paidParking"
	FieldNoParking   = "noParking"

	FieldLinks = "links"
)

// ParkingToggles lists the exclusive parking toggles in tie-break order.
var ParkingToggles = [...]string{FieldFreeParking, FieldPaidParking, FieldNoParking}

// Schema returns the layout of the study spot form.
func Schema() []Control {
	return []Control{
		{Name: FieldID, Kind: KindHidden},
		{Name: FieldName, Label: "Name", Kind: KindText},
		{Name: FieldAddress, Label: "Address", Kind: KindText},
		{Name: FieldSpotType, Label: "Type", Kind: KindText},
		{Name: FieldHours, Label: "Hours", Kind: KindText},
		{Name: FieldPhoneNumber, Label: "Phone", Kind: KindText},
		{Name: FieldImageURL, Label: "Image URL", Kind: KindText},

		{Name: FieldHasWifi, Label: "WiFi", Kind: KindCheckbox},
		{Name: FieldHasOutlets, Label: "Outlets", Kind: KindCheckbox},
		{Name: FieldHasIndoorSeating, Label: "Indoor Seating", Kind: KindCheckbox},
		{Name: FieldHasOutdoorSeating, Label: "Outdoor Seating", Kind: KindCheckbox},
		{Name: FieldHasRestroom, Label: "Restroom", Kind: KindCheckbox},
		{Name: FieldAcceptsCreditCard, Label: "Credit Card", Kind: KindCheckbox},

		{Name: FieldFreeParking, Label: "Free Parking", Kind: KindCheckbox},
		{Name: FieldPaidParking, Label: "Paid Parking", Kind: KindCheckbox},
		{Name: FieldNoParking, Label: "No Parking", Kind: KindCheckbox},

		{Name: FieldLinks, Kind: KindHidden, Value: "[]"},
	}
}

// NewSpotForm returns an empty study spot form laid out per [Schema].
func NewSpotForm() *Form {
	return New(Schema()...)
}

// IsParkingToggle reports whether name is one of [ParkingToggles].
func IsParkingToggle(name string) bool {
	for _, t := range ParkingToggles {
		if t == name {
			return true
		}
	}
	return false
}
