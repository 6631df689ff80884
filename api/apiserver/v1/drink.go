// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package v1 holds the resource models served by coffee-apiserver.
package v1

import (
	"database/sql/driver"
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/marmotedu/component-base/pkg/json"
	"gorm.io/gorm"
)

// Ingredient is one line of a drink recipe.
type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// Recipe is stored as a JSON array in a text column.
type Recipe []Ingredient

// Value implements driver.Valuer.
func (r Recipe) Value() (driver.Value, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (r *Recipe) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*r = nil

		return nil
	default:
		return fmt.Errorf("unsupported recipe column type %T", src)
	}

	return json.Unmarshal(data, r)
}

// GormDataType implements schema.GormDataTypeInterface.
func (Recipe) GormDataType() string {
	return "text"
}

// Drink represents a menu item.
type Drink struct {
	ID     int    `json:"id"     gorm:"column:id;primaryKey;autoIncrement"`
	Title  string `json:"title"  gorm:"column:title;type:varchar(80);uniqueIndex;not null" valid:"required,stringlength(1|80)"`
	Recipe Recipe `json:"recipe" gorm:"column:recipe;type:text;not null"`
}

// TableName maps to mysql table name.
func (d *Drink) TableName() string {
	return "drink"
}

// Validate validates that a drink object is valid.
func (d *Drink) Validate() error {
	if _, err := govalidator.ValidateStruct(d); err != nil {
		return err
	}

	if d.Recipe == nil {
		return fmt.Errorf("recipe: non zero value required")
	}

	return nil
}

// BeforeSave run `Validate` before every insert or update.
func (d *Drink) BeforeSave(tx *gorm.DB) error {
	return d.Validate()
}

// ShortIngredient is an ingredient without its quantity.
type ShortIngredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DrinkShort is the public view of a drink.
type DrinkShort struct {
	ID     int               `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

// DrinkLong is the detailed view of a drink.
type DrinkLong struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Recipe Recipe `json:"recipe"`
}

// Short returns the public view of d.
func (d *Drink) Short() DrinkShort {
	recipe := make([]ShortIngredient, 0, len(d.Recipe))
	for _, i := range d.Recipe {
		recipe = append(recipe, ShortIngredient{Name: i.Name, Color: i.Color})
	}

	return DrinkShort{ID: d.ID, Title: d.Title, Recipe: recipe}
}

// Long returns the detailed view of d.
func (d *Drink) Long() DrinkLong {
	recipe := d.Recipe
	if recipe == nil {
		recipe = Recipe{}
	}

	return DrinkLong{ID: d.ID, Title: d.Title, Recipe: recipe}
}

// DrinkPatch is a partial update. Nil fields are absent from the request.
type DrinkPatch struct {
	Title  *string `json:"title"`
	Recipe *Recipe `json:"recipe"`
}

// Apply overwrites the fields of d that the patch supplies. An empty title or an
// empty recipe counts as not supplied. It reports whether d changed.
func (p *DrinkPatch) Apply(d *Drink) bool {
	changed := false
	if p.Title != nil && *p.Title != "" {
		d.Title = *p.Title
		changed = true
	}

	if p.Recipe != nil && len(*p.Recipe) > 0 {
		d.Recipe = *p.Recipe
		changed = true
	}

	return changed
}
