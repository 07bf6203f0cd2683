// Package catalog expone el catálogo de la tienda (solo lectura).
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("product not found")

//go:embed products.yaml
var productsYAML []byte

type Product struct {
	ID       int    `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Price    int    `yaml:"price" json:"price"` // centavos
	Category string `yaml:"category" json:"category"`
	Image    string `yaml:"image" json:"image"`
}

// PriceLabel formatea el precio como "$34.99".
func (p Product) PriceLabel() string {
	return fmt.Sprintf("$%d.%02d", p.Price/100, p.Price%100)
}

type Catalog struct {
	products []Product
}

// Default parsea el catálogo embebido.
func Default() (*Catalog, error) {
	return Parse(productsYAML)
}

// Parse lee una lista YAML de productos. Ids repetidos o precios negativos son error.
func Parse(data []byte) (*Catalog, error) {
	var items []Product
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	seen := make(map[int]struct{}, len(items))
	for i, p := range items {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("catalog: product %d: name is required", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog: product %d: negative price", p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return &Catalog{products: items}, nil
}

// List devuelve los productos en orden de catálogo; category filtra sin
// distinguir mayúsculas (vacío = todos).
func (c *Catalog) List(category string) []Product {
	category = strings.TrimSpace(category)
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *Catalog) Get(id int) (Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Categories devuelve las categorías en orden de primera aparición.
func (c *Catalog) Categories() []string {
	var out []string
	seen := map[string]struct{}{}
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// MustDefault es Default para el arranque: el YAML embebido está cubierto por tests.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}
