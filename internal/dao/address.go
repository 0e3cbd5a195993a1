package dao

func init() {
	RegisterAccessor(&AddressRID, &Addresses{})
}

// Addresses is the DAO for customer addresses.
type Addresses struct {
	StoreResource
}
