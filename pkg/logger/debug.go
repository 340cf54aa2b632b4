//go:build !nodebug

/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger

const debugEnabled = true
