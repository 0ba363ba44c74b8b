/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pulpc

import (
	"context"
)

// Request is one assembled search request handed to the dispatch boundary,
// with every parsed value keyed by the option name that collected it.
type Request struct {
	ID     string
	Action string
	Values map[string]interface{}
}

// Response is the result set returned by the dispatch boundary.
type Response struct {
	Rows []map[string]interface{}
}

// Dispatcher forwards assembled requests to the server. Transport is
// supplied by the embedding application.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *Request) (*Response, error)
}

type echoDispatcher struct{}

// NewEchoDispatcher returns a dispatcher that answers every request with
// its own assembled values. Used standalone to inspect what a command
// would send.
func NewEchoDispatcher() Dispatcher {
	return &echoDispatcher{}
}

func (d *echoDispatcher) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	return &Response{Rows: []map[string]interface{}{req.Values}}, nil
}
