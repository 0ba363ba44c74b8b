/*
Copyright 2022 CodeNotary, Inc. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pulpc

import (
	"github.com/spf13/viper"
)

// Options client options
type Options struct {
	Address string // Search API hostname / ip address
	Port    int    // Search API port number
	Output  string // Output format for command results (plain or json)
}

// DefaultOptions ...
func DefaultOptions() *Options {
	return &Options{
		Address: "127.0.0.1",
		Port:    24817,
		Output:  "plain",
	}
}

// WithAddress sets address
func (o *Options) WithAddress(address string) *Options {
	o.Address = address
	return o
}

// WithPort sets port
func (o *Options) WithPort(port int) *Options {
	o.Port = port
	return o
}

// WithOutput sets the output format
func (o *Options) WithOutput(output string) *Options {
	o.Output = output
	return o
}

// OptionsFromEnv builds client options from the viper-bound configuration.
func OptionsFromEnv() *Options {
	return DefaultOptions().
		WithAddress(viper.GetString("server-address")).
		WithPort(viper.GetInt("server-port")).
		WithOutput(viper.GetString("output"))
}
