package validation

// UserSchema describes a user body.
var UserSchema = Schema{
	{Name: "name", Rule: Rule{Type: TypeString, Required: true, Min: Bound(2), Max: Bound(100)}},
	{Name: "email", Rule: Rule{Type: TypeEmail, Required: true}},
	{Name: "membership_type", Rule: Rule{Type: TypeString, Required: true}},
}

// BookingSchema describes a booking body.
var BookingSchema = Schema{
	{Name: "user_id", Rule: Rule{Type: TypeUUID, Required: true}},
	{Name: "event_name", Rule: Rule{Type: TypeString, Required: true, Min: Bound(3)}},
	{Name: "booking_date", Rule: Rule{Type: TypeDate, Required: true}},
	{Name: "status", Rule: Rule{Type: TypeString}},
}
