package service

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"store-console/internal/domain"
)

var (
	codeRe    = regexp.MustCompile(`^[0-9]+$`)
	managerRe = regexp.MustCompile(`^[A-Za-z ]+$`)
	mobileRe  = regexp.MustCompile(`^[0-9]{10}$`)

	designations = map[string]bool{"Mr": true, "Mrs": true, "Miss": true, "Dr": true, "Ms": true}
	storeTypes   = map[string]bool{"store": true, "branch": true}

	validate = validator.New()
)

type StoreService struct{ stores domain.StoreRepository }

func NewStoreService(stores domain.StoreRepository) *StoreService {
	return &StoreService{stores: stores}
}

// StoreInput POST/PUT 的六个字段；update 时 Code 来自路径
type StoreInput struct {
	Code        string `json:"code"`
	Designation string `json:"designation"`
	Manager     string `json:"manager"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	StoreType   string `json:"storeType"`
}

func (in StoreInput) validate() error {
	if in.Code == "" || in.Designation == "" || in.Manager == "" ||
		in.Email == "" || in.Mobile == "" || in.StoreType == "" {
		return Invalid("All fields are required")
	}
	if !codeRe.MatchString(in.Code) {
		return Invalid("Store code must contain digits only")
	}
	if !designations[in.Designation] {
		return Invalid("Invalid designation")
	}
	if !managerRe.MatchString(in.Manager) {
		return Invalid("Manager name must contain letters and spaces only")
	}
	if err := validate.Var(in.Email, "required,email"); err != nil {
		return Invalid("Invalid email address")
	}
	if !mobileRe.MatchString(in.Mobile) {
		return Invalid("Mobile number must be exactly 10 digits")
	}
	if !storeTypes[in.StoreType] {
		return Invalid("Store type must be store or branch")
	}
	return nil
}

func (in StoreInput) toStore() *domain.Store {
	return &domain.Store{
		Code:        in.Code,
		Designation: in.Designation,
		Manager:     in.Manager,
		Email:       in.Email,
		Mobile:      in.Mobile,
		StoreType:   in.StoreType,
	}
}

func (s *StoreService) List() ([]domain.Store, error) { return s.stores.List() }

func (s *StoreService) Get(code string) (*domain.Store, error) {
	st, err := s.stores.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrNotFound
	}
	return st, nil
}

// Add 并发撞同一 code 时由存储层唯一约束裁决
func (s *StoreService) Add(in StoreInput) (*domain.Store, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	st := in.toStore()
	if err := s.stores.Create(st); err != nil {
		if isDupKey(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return st, nil
}

func (s *StoreService) Update(code string, in StoreInput) error {
	in.Code = code
	if err := in.validate(); err != nil {
		return err
	}
	existing, err := s.stores.FindByCode(code)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	// 相同值的重放也算成功（幂等），不看命中行数
	_, err = s.stores.Update(code, in.toStore())
	return err
}

func (s *StoreService) Delete(code string) error {
	deleted, err := s.stores.Delete(code)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

type ImportResult struct {
	Code   string `json:"code"`
	Action string `json:"action"` // created | updated
}

type ImportError struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// BulkImport 逐行独立处理，出错不回滚也不中断，所有行的结果一起返回
func (s *StoreService) BulkImport(rows []StoreInput) ([]ImportResult, []ImportError) {
	results := make([]ImportResult, 0, len(rows))
	importErrs := make([]ImportError, 0)

	for _, row := range rows {
		existing, err := s.stores.FindByCode(row.Code)
		if err != nil {
			importErrs = append(importErrs, ImportError{Code: row.Code, Error: err.Error()})
			continue
		}
		if existing == nil {
			if _, err := s.Add(row); err != nil {
				importErrs = append(importErrs, ImportError{Code: row.Code, Error: err.Error()})
				continue
			}
			results = append(results, ImportResult{Code: row.Code, Action: "created"})
		} else {
			if err := s.Update(row.Code, row); err != nil {
				importErrs = append(importErrs, ImportError{Code: row.Code, Error: err.Error()})
				continue
			}
			results = append(results, ImportResult{Code: row.Code, Action: "updated"})
		}
	}
	return results, importErrs
}
