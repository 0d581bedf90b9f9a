package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
)

// MySQLOption for MySQL options
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for configuring MySQL
type MySQLConfig struct {
	Host         string        `mapstructure:"host"`
	Port         uint16        `mapstructure:"port"`
	Database     string        `mapstructure:"database"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	Options      []MySQLOption `mapstructure:"options"`
}

func (c MySQLConfig) optionsString() string {
	opts := []string{"parseTime=true"}
	for _, o := range c.Options {
		if o.Key == "parseTime" {
			continue
		}
		key := url.QueryEscape(o.Key)
		value := url.QueryEscape(o.Value)
		opts = append(opts, key+"="+value)
	}
	return strings.Join(opts, "&")
}

// DSN returns the data source name. parseTime is always on, the event
// and notification tables scan into time.Time.
func (c MySQLConfig) DSN() string {
	optStr := c.optionsString()
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", c.Username, c.Password, c.Host, c.Port, c.Database, optStr)
}

// MustConnect connects to database using sqlx
func (c MySQLConfig) MustConnect() *sqlx.DB {
	db := sqlx.MustConnect("mysql", c.DSN())

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	return db
}
