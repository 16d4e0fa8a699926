package input

// Key identifies a keyboard key independent of the platform keycode.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyTab
	KeyShift
	KeyCtrl
	KeyIns
	KeyDel
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyBack
	KeyEscape
	KeyReturn
	KeyEnter
	KeyPause
	KeyScroll
	KeyNP0
	KeyNP1
	KeyNP2
	KeyNP3
	KeyNP4
	KeyNP5
	KeyNP6
	KeyNP7
	KeyNP8
	KeyNP9
	KeyNPMul
	KeyNPDiv
	KeyNPAdd
	KeyNPSub
	KeyNPDecimal
	KeyPeriod

	// KeyCount is the number of tracked keys.
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone: "NONE",
	KeyA: "A",
	KeyB: "B",
	KeyC: "C",
	KeyD: "D",
	KeyE: "E",
	KeyF: "F",
	KeyG: "G",
	KeyH: "H",
	KeyI: "I",
	KeyJ: "J",
	KeyK: "K",
	KeyL: "L",
	KeyM: "M",
	KeyN: "N",
	KeyO: "O",
	KeyP: "P",
	KeyQ: "Q",
	KeyR: "R",
	KeyS: "S",
	KeyT: "T",
	KeyU: "U",
	KeyV: "V",
	KeyW: "W",
	KeyX: "X",
	KeyY: "Y",
	KeyZ: "Z",
	Key0: "0",
	Key1: "1",
	Key2: "2",
	Key3: "3",
	Key4: "4",
	Key5: "5",
	Key6: "6",
	Key7: "7",
	Key8: "8",
	Key9: "9",
	KeyF1: "F1",
	KeyF2: "F2",
	KeyF3: "F3",
	KeyF4: "F4",
	KeyF5: "F5",
	KeyF6: "F6",
	KeyF7: "F7",
	KeyF8: "F8",
	KeyF9: "F9",
	KeyF10: "F10",
	KeyF11: "F11",
	KeyF12: "F12",
	KeyUp: "UP",
	KeyDown: "DOWN",
	KeyLeft: "LEFT",
	KeyRight: "RIGHT",
	KeySpace: "SPACE",
	KeyTab: "TAB",
	KeyShift: "SHIFT",
	KeyCtrl: "CTRL",
	KeyIns: "INS",
	KeyDel: "DEL",
	KeyHome: "HOME",
	KeyEnd: "END",
	KeyPgUp: "PGUP",
	KeyPgDn: "PGDN",
	KeyBack: "BACK",
	KeyEscape: "ESCAPE",
	KeyReturn: "RETURN",
	KeyEnter: "ENTER",
	KeyPause: "PAUSE",
	KeyScroll: "SCROLL",
	KeyNP0: "NP0",
	KeyNP1: "NP1",
	KeyNP2: "NP2",
	KeyNP3: "NP3",
	KeyNP4: "NP4",
	KeyNP5: "NP5",
	KeyNP6: "NP6",
	KeyNP7: "NP7",
	KeyNP8: "NP8",
	KeyNP9: "NP9",
	KeyNPMul: "NPMUL",
	KeyNPDiv: "NPDIV",
	KeyNPAdd: "NPADD",
	KeyNPSub: "NPSUB",
	KeyNPDecimal: "NPDECIMAL",
	KeyPeriod: "PERIOD",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "UNKNOWN"
	}
	return keyNames[k]
}

// Mouse buttons.
const (
	MouseLeft = iota
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2

	// MouseButtons is the number of tracked mouse buttons.
	MouseButtons
)
