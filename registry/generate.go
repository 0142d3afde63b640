// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

//go:generate mockgen -destination=mocks/environment.go -package=mocks github.com/bitmark-inc/batteryd/registry Environment
//go:generate mockgen -destination=mocks/sink.go -package=mocks github.com/bitmark-inc/batteryd/event Sink
//go:generate mockgen -destination=mocks/registry.go -package=mocks github.com/bitmark-inc/batteryd/registry Registry
