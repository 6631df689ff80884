// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmotedu/coffeeshop/internal/pkg/server"
	"github.com/marmotedu/coffeeshop/pkg/db"
)

func TestApplyTo(t *testing.T) {
	c := server.NewConfig()

	run := NewServerRunOptions()
	run.Mode = "debug"
	require.NoError(t, run.ApplyTo(c))

	insecure := NewInsecureServingOptions()
	insecure.BindAddress = "0.0.0.0"
	insecure.BindPort = 5000
	require.NoError(t, insecure.ApplyTo(c))

	feature := NewFeatureOptions()
	feature.EnableMetrics = true
	require.NoError(t, feature.ApplyTo(c))

	assert.Equal(t, "debug", c.Mode)
	assert.True(t, c.Healthz)
	assert.Equal(t, []string{"recovery", "secure", "nocache", "cors", "logger"}, c.Middlewares)
	assert.Equal(t, "0.0.0.0:5000", c.InsecureServing.Address)
	assert.True(t, c.EnableMetrics)
	assert.False(t, c.EnableProfiling)
}

func TestServerRunOptions_Validate(t *testing.T) {
	o := NewServerRunOptions()
	assert.Empty(t, o.Validate())

	o.Mode = "production"
	assert.Len(t, o.Validate(), 1)
}

func TestInsecureServingOptions_Validate(t *testing.T) {
	o := NewInsecureServingOptions()
	assert.Empty(t, o.Validate())

	o.BindPort = 70000
	assert.Len(t, o.Validate(), 1)
}

func TestDatabaseOptions(t *testing.T) {
	o := NewDatabaseOptions()
	assert.Empty(t, o.Validate())
	assert.Equal(t, "coffeeshop.db", o.dataSourceName())

	o.Type = db.TypeMySQL
	o.Host = "127.0.0.1:3306"
	o.Username = "coffee"
	o.Password = "secret"
	o.Database = "coffeeshop"
	assert.Empty(t, o.Validate())
	assert.Equal(t, "coffee:secret@tcp(127.0.0.1:3306)/coffeeshop?charset=utf8mb4&parseTime=true&loc=Local",
		o.dataSourceName())

	o.DSN = "root@tcp(db:3306)/drinks"
	assert.Equal(t, "root@tcp(db:3306)/drinks", o.dataSourceName())

	o.Type = "postgres"
	o.LogLevel = 0
	assert.Len(t, o.Validate(), 2)
}

func TestDatabaseOptions_NewClient(t *testing.T) {
	o := NewDatabaseOptions()
	o.Database = "file:options_test?mode=memory&cache=shared"

	client, err := o.NewClient()
	require.NoError(t, err)

	sqlDB, err := client.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.NoError(t, sqlDB.Close())
}

func TestAuthOptions(t *testing.T) {
	o := NewAuthOptions()
	assert.Len(t, o.Validate(), 2)

	o.Domain = "coffeeshop.us.auth0.com"
	o.Audience = "drinks"
	require.NoError(t, o.Complete())
	assert.Empty(t, o.Validate())
	assert.Equal(t, "https://coffeeshop.us.auth0.com/", o.Issuer)
	assert.Equal(t, "https://coffeeshop.us.auth0.com/.well-known/jwks.json", o.JWKSURL)

	o = NewAuthOptions()
	o.Domain = "https://other.auth0.com/"
	o.Issuer = "https://issuer.test/"
	require.NoError(t, o.Complete())
	assert.Equal(t, "https://issuer.test/", o.Issuer)
	assert.Equal(t, "https://other.auth0.com/.well-known/jwks.json", o.JWKSURL)

	o.RefreshInterval = -time.Second
	assert.Len(t, o.Validate(), 2)
}

func TestAuthOptions_IssuerWithoutDomain(t *testing.T) {
	o := NewAuthOptions()
	o.JWKSURL = "https://keys.test/.well-known/jwks.json"
	o.Audience = "drinks"
	require.NoError(t, o.Complete())
	assert.Empty(t, o.Issuer)
	assert.Len(t, o.Validate(), 1)

	o.Issuer = "https://issuer.test/"
	assert.Empty(t, o.Validate())

	o = NewAuthOptions()
	o.JWKSJSON = `{"keys":[]}`
	o.Audience = "drinks"
	require.NoError(t, o.Complete())
	assert.Len(t, o.Validate(), 1)
}

func TestAuthOptions_NewKeySource(t *testing.T) {
	o := NewAuthOptions()
	o.JWKSJSON = `{"keys":[]}`

	keys, err := o.NewKeySource()
	require.NoError(t, err)
	defer keys.Close()

	_, err = keys.Key("unknown")
	assert.Error(t, err)
}

func TestRedisOptions(t *testing.T) {
	o := NewRedisOptions()
	assert.Empty(t, o.Validate())

	o.Enabled = true
	o.Channel = ""
	assert.Len(t, o.Validate(), 1)

	c := o.Config()
	assert.Equal(t, "127.0.0.1", c.Host)
	assert.Equal(t, 6379, c.Port)
	assert.Equal(t, 5*time.Second, c.Timeout)
}

func TestAddFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	run := NewServerRunOptions()
	insecure := NewInsecureServingOptions()
	database := NewDatabaseOptions()
	auth := NewAuthOptions()
	redis := NewRedisOptions()
	feature := NewFeatureOptions()

	run.AddFlags(fs)
	insecure.AddFlags(fs)
	database.AddFlags(fs)
	auth.AddFlags(fs)
	redis.AddFlags(fs)
	feature.AddFlags(fs)

	require.NoError(t, fs.Parse([]string{
		"--server.middlewares=recovery,logger",
		"--insecure.bind-port=5000",
		"--database.type=mysql",
		"--auth.audience=drinks",
		"--redis.enabled",
		"--feature.profiling",
	}))

	assert.Equal(t, []string{"recovery", "logger"}, run.Middlewares)
	assert.Equal(t, 5000, insecure.BindPort)
	assert.Equal(t, db.TypeMySQL, database.Type)
	assert.Equal(t, "drinks", auth.Audience)
	assert.True(t, redis.Enabled)
	assert.True(t, feature.EnableProfiling)
}
