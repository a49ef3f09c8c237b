package models

// Driver represents a driver in the fleet directory.
// Records are created by fleet onboarding; the call orchestration
// only reads them.
type Driver struct {
	DriverID       string `json:"driverId" db:"driver_id"`
	Status         string `json:"status" db:"status"`
	FirstName      string `json:"firstName" db:"first_name"`
	LastName       string `json:"lastName" db:"last_name"`
	TruckID        string `json:"truckId" db:"truck_id"`
	PhoneNumber    string `json:"phoneNumber" db:"phone_number"`
	Email          string `json:"email" db:"email"`
	HiredOn        string `json:"hiredOn" db:"hired_on"`
	UpdatedOn      string `json:"updatedOn" db:"updated_on"`
	CompanyID      string `json:"companyId" db:"company_id"`
	Dispatcher     string `json:"dispatcher" db:"dispatcher"`
	FirstLanguage  string `json:"firstLanguage" db:"first_language"`
	SecondLanguage string `json:"secondLanguage" db:"second_language"`
	GlobalDND      bool   `json:"globalDnd" db:"global_dnd"`

	// Per-channel communication preferences
	SafetyCall         bool `json:"safetyCall" db:"safety_call"`
	SafetyMessage      bool `json:"safetyMessage" db:"safety_message"`
	HOSSupport         bool `json:"hosSupport" db:"hos_support"`
	MaintenanceCall    bool `json:"maintenanceCall" db:"maintenance_call"`
	MaintenanceMessage bool `json:"maintenanceMessage" db:"maintenance_message"`
	DispatchCall       bool `json:"dispatchCall" db:"dispatch_call"`
	DispatchMessage    bool `json:"dispatchMessage" db:"dispatch_message"`
	AccountCall        bool `json:"accountCall" db:"account_call"`
	AccountMessage     bool `json:"accountMessage" db:"account_message"`

	TelegramID string `json:"telegramId" db:"telegram_id"`
}

// FullName returns the driver's display name
func (d *Driver) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// Callable reports whether the driver may be dialed at all:
// a phone number must be present and global do-not-disturb unset.
func (d *Driver) Callable() bool {
	return d.PhoneNumber != "" && !d.GlobalDND
}
