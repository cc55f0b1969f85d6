// Package testutil holds test harness helpers shared by package tests.
//
// The subscription fixture is a canonical snapshot of the backing file.
// Tests restore it before they run and again when they finish, so each test
// sees the same records regardless of what earlier tests wrote. The store
// itself knows nothing about fixtures.
package testutil
