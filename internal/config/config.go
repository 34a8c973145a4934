package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"maitred/internal/models"
)

// Config represents the application configuration, including the seed
// menu and floor plan loaded at startup.
type Config struct {
	RestaurantName string `yaml:"restaurant_name"`
	Server         struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`
	Tables []TableConfig    `yaml:"tables"`
	Menu   []MenuItemConfig `yaml:"menu"`
}

// TableConfig describes one table of the floor plan.
type TableConfig struct {
	Number   int    `yaml:"number"`
	Capacity int    `yaml:"capacity"`
	Location string `yaml:"location"`
	Features string `yaml:"features"`
}

// MenuItemConfig describes one seed menu item. Seeded items start out
// available.
type MenuItemConfig struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	PrepTime    int      `yaml:"prep_time_minutes"`
	SpiceLevel  int      `yaml:"spice_level"`
	Calories    int      `yaml:"calories"`
	Ingredients []string `yaml:"ingredients"`
	Allergens   []string `yaml:"allergens"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	return &cfg, nil
}

// FloorTables converts the configured tables into floor-plan seeds.
func (c *Config) FloorTables() []models.Table {
	tables := make([]models.Table, 0, len(c.Tables))
	for _, t := range c.Tables {
		tables = append(tables, models.Table{
			Number:   t.Number,
			Capacity: t.Capacity,
			Location: t.Location,
			Features: t.Features,
		})
	}
	return tables
}

// MenuItems converts the configured menu into catalog seeds.
func (c *Config) MenuItems() []models.MenuItem {
	items := make([]models.MenuItem, 0, len(c.Menu))
	for _, m := range c.Menu {
		items = append(items, models.MenuItem{
			ID:          m.ID,
			Name:        m.Name,
			Category:    m.Category,
			Description: m.Description,
			Price:       m.Price,
			PrepTime:    m.PrepTime,
			Available:   true,
			SpiceLevel:  m.SpiceLevel,
			Calories:    m.Calories,
			Ingredients: m.Ingredients,
			Allergens:   m.Allergens,
		})
	}
	return items
}
