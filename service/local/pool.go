//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/framework"
)

type bulkItemParam struct {
	idx       int
	ctx       context.Context
	ec        *framework.Context
	selection []string
	svc       *local
	results   []*evalresult.EvaluationResult
	wg        *sync.WaitGroup
}

func (p *bulkItemParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.ec = nil
	p.selection = nil
	p.svc = nil
	p.results = nil
	p.wg = nil
}

var bulkItemParamPool = &sync.Pool{
	New: func() any { return new(bulkItemParam) },
}

func createBulkPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*bulkItemParam)
		if !ok {
			panic("bulk evaluation pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			bulkItemParamPool.Put(param)
		}()
		param.results[param.idx] = param.svc.evaluateBulkItem(param.ctx, param.ec, param.selection)
	})
	if err != nil {
		return nil, fmt.Errorf("create bulk evaluation pool: %w", err)
	}
	return pool, nil
}
