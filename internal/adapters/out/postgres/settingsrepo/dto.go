package settingsrepo

type SettingDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:text"`
}

func (SettingDTO) TableName() string {
	return "settings"
}
