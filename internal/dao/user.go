package dao

func init() {
	RegisterAccessor(&UserRID, &Users{})
}

// Users is the DAO for storefront accounts.
type Users struct {
	StoreResource
}
