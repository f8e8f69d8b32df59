// Package notifieradapters provides ready-made implementations of the
// lending.Notifier capability.
//
// SlogNotifier writes notifications to a structured logger and is the
// implementation intended for real use. RecordingNotifier captures
// notifications in memory for verification and is intended for tests -
// it is exported here rather than hidden in a _test file so that
// consumers of the lending package can use it in their own tests.
package notifieradapters
