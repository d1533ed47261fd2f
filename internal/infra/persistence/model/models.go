package model

// All returns every persisted model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&ProfileModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&PasswordResetCodeModel{},
		&CategoryModel{},
		&EquipmentTypeModel{},
		&ListingModel{},
		&ListingViewModel{},
		&NotificationModel{},
		&UserDeviceModel{},
	}
}
