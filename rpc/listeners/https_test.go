// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/fixtures"
	"github.com/bitmark-inc/batteryd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

var client = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // ignore certificate verification
	},
}

func setupHTTPS(t *testing.T, h *testHandler) (string, listeners.Listener) {
	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32"},
		},
	}

	tlsConf, _ := testTLS(t)

	l, err := listeners.NewHTTPS(
		&conf,
		logger.New(fixtures.LogCategory),
		tlsConf,
		h,
	)
	if err != nil {
		t.Fatalf("NewHTTPS with error: %s", err)
	}

	return fmt.Sprintf("https://%s/", listen), l
}

func get(t *testing.T, url string) string {
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("client get with error: %s", err)
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	return string(content)
}

func TestHttpsListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := &testHandler{}
	url, l := setupHTTPS(t, h)

	err := l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	assert.Equal(t, "RPC", get(t, url+"batteryd/rpc"), "wrong RPC call")
	assert.Equal(t, "Details", get(t, url+"batteryd/details"), "wrong Details call")
	assert.Equal(t, "Root", get(t, url+"other"), "wrong Root call")

	assert.Equal(t, 1, len(h.allow["details"]), "allow list not set")
}

func TestHttpsListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.Nil(t, err, "disabled is not an error")
	assert.Nil(t, l, "listener created")
}

func TestHttpsListenerInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			MaximumConnections: 0,
			Listen:             []string{"127.0.0.1:2131"},
		},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.Equal(t, fault.MissingParameters, err, "zero connections")

	_, err = listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			MaximumConnections: 1,
			Listen:             []string{"127.0.0.1:2131"},
			Allow:              map[string][]string{"details": {"not-a-cidr"}},
		},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.NotNil(t, err, "invalid allow")
}
