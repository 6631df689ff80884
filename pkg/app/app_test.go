// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	cliflag "github.com/marmotedu/component-base/pkg/cli/flag"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOptions struct {
	Name      string `json:"name"      mapstructure:"name"`
	Completed bool   `json:"completed" mapstructure:"-"`
}

func (o *testOptions) Flags() (fss cliflag.NamedFlagSets) {
	fs := fss.FlagSet("test")
	fs.StringVar(&o.Name, "name", o.Name, "Name of the drink.")

	return fss
}

func (o *testOptions) Validate() []error {
	if o.Name == "" {
		return []error{fmt.Errorf("--name must be set")}
	}

	return nil
}

func (o *testOptions) Complete() error {
	o.Completed = true

	return nil
}

func (o *testOptions) String() string {
	return o.Name
}

func TestApp_Flags(t *testing.T) {
	opts := &testOptions{}
	var basename string

	a := NewApp("Test Server", "coffee-flags",
		WithOptions(opts),
		WithNoConfig(),
		WithSilence(),
		WithDefaultValidArgs(),
		WithRunFunc(func(name string) error {
			basename = name

			return nil
		}),
	)

	cmd := a.Command()
	cmd.SetArgs([]string{"--name=latte"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "coffee-flags", basename)
	assert.Equal(t, "latte", opts.Name)
	assert.True(t, opts.Completed)
	assert.NotNil(t, cmd.Flags().Lookup("version"))
	assert.Nil(t, cmd.Flags().Lookup("config"))
	assert.Nil(t, pflag.Lookup("config"))
}

func TestApp_ValidationFails(t *testing.T) {
	a := NewApp("Test Server", "coffee-invalid",
		WithOptions(&testOptions{}),
		WithNoConfig(),
		WithNoVersion(),
		WithRunFunc(func(string) error {
			t.Fatal("run must not be called")

			return nil
		}),
	)

	cmd := a.Command()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name must be set")
}

func TestApp_Args(t *testing.T) {
	a := NewApp("Test Server", "coffee-args",
		WithOptions(&testOptions{Name: "mocha"}),
		WithNoConfig(),
		WithDefaultValidArgs(),
		WithRunFunc(func(string) error { return nil }),
	)

	cmd := a.Command()
	cmd.SetArgs([]string{"unexpected"})
	assert.Error(t, cmd.Execute())
}

func TestApp_ConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "coffee-config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: flat-white\n"), 0o600))

	opts := &testOptions{}
	a := NewApp("Test Server", "coffee-config",
		WithOptions(opts),
		WithSilence(),
		WithRunFunc(func(string) error { return nil }),
	)

	cmd := a.Command()
	assert.NotNil(t, cmd.Flags().ShorthandLookup("c"))
	cmd.SetArgs([]string{"--config", file})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "flat-white", opts.Name)
}

func TestFormatBaseName(t *testing.T) {
	assert.Equal(t, "coffee-apiserver", FormatBaseName("/usr/local/bin/coffee-apiserver"))
}
