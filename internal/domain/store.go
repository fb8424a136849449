package domain

// Store 门店记录；code 一经创建不可变更
type Store struct {
	Code        string `gorm:"primaryKey;size:32" json:"code"`
	Designation string `gorm:"size:16;not null" json:"designation"`
	Manager     string `gorm:"size:100;not null" json:"manager"`
	Email       string `gorm:"size:255;not null" json:"email"`
	Mobile      string `gorm:"size:16;not null" json:"mobile"`
	StoreType   string `gorm:"column:store_type;size:16;not null" json:"store_type"`
}

func (Store) TableName() string { return "stores" }

type StoreRepository interface {
	List() ([]Store, error)
	FindByCode(code string) (*Store, error)
	Create(s *Store) error
	// Update 按 code 覆盖除 code 外的全部字段，返回命中的行数
	Update(code string, s *Store) (int64, error)
	Delete(code string) (bool, error)
}
