//go:build gui

package main

import "clockalarm/gui"

func runGUI(sess *session) (int, error) {
	a := gui.NewApp(gui.Actions{
		Test:     func() { sess.send(cmdTest) },
		Toggle:   func() { sess.send(cmdToggle) },
		Interact: func() { sess.send(cmdInteract) },
	})
	sess.start(a)
	sess.notifyQuit(a.Quit)

	err := gui.Run(a)
	return sess.stop(), err
}
