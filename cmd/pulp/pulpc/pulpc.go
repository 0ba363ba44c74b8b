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

// Package pulpc assembles normalized search queries into server-side
// criteria documents and hands them to the dispatch boundary.
package pulpc

import (
	"context"
	"os"

	"github.com/fkuep/pulpcore/pkg/criteria"
	"github.com/fkuep/pulpcore/pkg/errors"
	"github.com/fkuep/pulpcore/pkg/logger"
	"github.com/rs/xid"
)

// Actions recognized at the dispatch boundary.
const (
	ActionRepoSearch    = "repo.search"
	ActionUnitSearch    = "unit.search"
	ActionUnitSearchAll = "unit.search_all"
	ActionUnitCopy      = "unit.copy"
)

// Client ...
type Client interface {
	SearchRepositories(ctx context.Context, q *criteria.Query) (CommandOutput, error)
	SearchUnits(ctx context.Context, q *criteria.Query) (CommandOutput, error)
	SearchAllUnits(ctx context.Context, q *criteria.Query) (CommandOutput, error)
	CopyUnits(ctx context.Context, q *criteria.Query) (CommandOutput, error)
}

type pulpc struct {
	options    *Options
	dispatcher Dispatcher
	log        logger.Logger
}

// Init ...
func Init(opts *Options, d Dispatcher, log logger.Logger) (*pulpc, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if d == nil {
		d = NewEchoDispatcher()
	}
	if log == nil {
		log = logger.New("pulpc", os.Stderr)
	}
	return &pulpc{options: opts, dispatcher: d, log: log}, nil
}

func (p *pulpc) SearchRepositories(ctx context.Context, q *criteria.Query) (CommandOutput, error) {
	return p.search(ctx, ActionRepoSearch, q)
}

func (p *pulpc) SearchUnits(ctx context.Context, q *criteria.Query) (CommandOutput, error) {
	return p.search(ctx, ActionUnitSearch, q)
}

func (p *pulpc) SearchAllUnits(ctx context.Context, q *criteria.Query) (CommandOutput, error) {
	return p.search(ctx, ActionUnitSearchAll, q)
}

func (p *pulpc) CopyUnits(ctx context.Context, q *criteria.Query) (CommandOutput, error) {
	req, err := p.assemble(ActionUnitCopy, q)
	if err != nil {
		return nil, err
	}
	if _, err := p.dispatcher.Dispatch(ctx, req); err != nil {
		return nil, errors.Wrap(err, "copy dispatch failed")
	}
	return &copyOutput{request: req}, nil
}

func (p *pulpc) search(ctx context.Context, action string, q *criteria.Query) (CommandOutput, error) {
	req, err := p.assemble(action, q)
	if err != nil {
		return nil, err
	}
	resp, err := p.dispatcher.Dispatch(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "search dispatch failed")
	}
	return &searchOutput{action: action, rows: resp.Rows}, nil
}

func (p *pulpc) assemble(action string, q *criteria.Query) (*Request, error) {
	values, err := Document(q)
	if err != nil {
		return nil, err
	}
	req := &Request{
		ID:     xid.New().String(),
		Action: action,
		Values: values,
	}
	p.log.Debugf("dispatching %s request %s to %s:%d", action, req.ID, p.options.Address, p.options.Port)
	return req, nil
}
