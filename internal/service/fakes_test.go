package service

import (
	"time"

	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type memUserRepo struct {
	byID   map[uint]*model.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[uint]*model.User{}, nextID: 1}
}

func (m *memUserRepo) FindAll() ([]model.User, error) {
	out := []model.User{}
	for _, u := range m.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) FindByID(id uint) (*model.User, error) {
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) Create(u *model.User) error {
	u.ID = m.nextID
	m.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUserRepo) Update(u *model.User) error {
	u.UpdatedAt = time.Now()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUserRepo) Delete(id uint) error {
	delete(m.byID, id)
	return nil
}

type memCategoryRepo struct {
	byID    map[uint]*model.Category
	nextID  uint
	deletes int
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: map[uint]*model.Category{}, nextID: 1}
}

func (m *memCategoryRepo) FindAll() ([]model.Category, error) {
	out := []model.Category{}
	for _, c := range m.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCategoryRepo) FindByID(id uint) (*model.Category, error) {
	if c, ok := m.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memCategoryRepo) Create(c *model.Category) error {
	c.ID = m.nextID
	m.nextID++
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCategoryRepo) Update(c *model.Category) error {
	c.UpdatedAt = time.Now()
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCategoryRepo) Delete(id uint) error {
	m.deletes++
	delete(m.byID, id)
	return nil
}

type memProductRepo struct {
	byID   map[uint]*model.Product
	nextID uint
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[uint]*model.Product{}, nextID: 1}
}

func (m *memProductRepo) FindAll() ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range m.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProductRepo) FindByID(id uint) (*model.Product, error) {
	if p, ok := m.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memProductRepo) FindByCategory(categoryID uint) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range m.byID {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	for _, p := range m.byID {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *memProductRepo) Create(p *model.Product) error {
	p.ID = m.nextID
	m.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Update(p *model.Product) error {
	p.UpdatedAt = time.Now()
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Delete(id uint) error {
	delete(m.byID, id)
	return nil
}
