// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - background process calling Changed whenever the
// configuration file is written
//
// the directory is watched so that editors that replace the file by
// rename are also detected
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	fileName string
	changed  func()
}

// NewWatcher - watch a file
func NewWatcher(log *logger.L, fileName string, changed func()) (*Watcher, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	err = watcher.Add(filepath.Dir(fileName))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		fileName: fileName,
		changed:  changed,
	}, nil
}

// Run - deliver change notifications until shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %q", w.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case e, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(e.Name) != w.fileName {
				continue loop
			}
			if isChange(e) {
				log.Infof("file event: %s", e)
				w.changed()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	w.watcher.Close()
	log.Info("stopped")
}

func isChange(e fsnotify.Event) bool {
	return e.Op&fsnotify.Write == fsnotify.Write ||
		e.Op&fsnotify.Create == fsnotify.Create
}
