/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package x holds small helpers shared across the module. The relate engine
// treats malformed inputs as programmer errors rather than recoverable
// conditions, so these helpers fail fast: use Check/Checkf for errors from
// external libs, AssertTrue/AssertTruef for invariants. To attach context to
// an error and pass it up instead, use errors.Wrapf directly.
package x

import (
	"log"

	"github.com/pkg/errors"
)

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrap(err, ""))
	}
}

// Checkf is Check with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrapf(err, format, args...))
	}
}

// AssertTrue asserts that b is true. Otherwise, it logs fatal.
func AssertTrue(b bool) {
	if !b {
		log.Fatalf("%+v", errors.Errorf("Assert failed"))
	}
}

// AssertTruef is AssertTrue with extra info.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}

// Fatalf logs fatal with a stack trace.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf("%+v", errors.Errorf(format, args...))
}

// Ignore is used to discard errors deliberately, while keeping the linter
// happy.
func Ignore(_ error) {
	// Do nothing.
}
