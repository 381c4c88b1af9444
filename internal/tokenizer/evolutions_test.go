package tokenizer

import "testing"

// The table is the sole authority for character dispatch, so every
// (state, class) pair must hold a defined evolution in both variants.
func TestTransitionTableTotality(t *testing.T) {
	tables := map[string]*evolutionTable{
		"preserve": &evosPreserve,
		"discard":  &evosDiscard,
	}
	for name, table := range tables {
		for st := state(0); st < numStates; st++ {
			for cc := charClass(0); cc < numCharClasses; cc++ {
				evo := table[st][cc]
				if evo.next < 0 || evo.next >= numStates {
					t.Errorf("%s[%s][%s]: next state out of range: %d", name, st, cc, evo.next)
				}
				if evo.act < 0 || evo.act >= numActions {
					t.Errorf("%s[%s][%s]: action out of range: %d", name, st, cc, evo.act)
				}
			}
		}
	}
}

// Backslash sequences cannot nest: no evolution reachable from the two
// backslash states may push again, and every push leads into one of them.
func TestPushedStateSlotNeverNests(t *testing.T) {
	for _, table := range []*evolutionTable{&evosPreserve, &evosDiscard} {
		for cc := charClass(0); cc < numCharClasses; cc++ {
			if table[stBackslash][cc].act == actPush || table[stBackslashAcc][cc].act == actPush {
				t.Errorf("backslash state pushes again on %s", cc)
			}
		}
		for st := state(0); st < numStates; st++ {
			for cc := charClass(0); cc < numCharClasses; cc++ {
				evo := table[st][cc]
				if evo.act == actPush && evo.next != stBackslash && evo.next != stBackslashAcc {
					t.Errorf("[%s][%s]: push must enter a backslash state, goes to %s", st, cc, evo.next)
				}
				if (evo.act == actPop || evo.act == actPopEscape) &&
					st != stBackslash && st != stBackslashAcc {
					t.Errorf("[%s][%s]: pop outside the backslash states", st, cc)
				}
			}
		}
	}
}

func TestClassifierTotal(t *testing.T) {
	for c := 0; c < 256; c++ {
		cc := classOf(byte(c))
		if cc < 0 || cc >= numCharClasses {
			t.Fatalf("byte %#x: class out of range: %d", c, cc)
		}
		if c >= 128 && cc != ccLetter {
			t.Errorf("byte %#x: code units beyond 7 bits must classify as letters, got %s", c, cc)
		}
	}
}

func TestClassifierSpotChecks(t *testing.T) {
	cases := []struct {
		c  byte
		cc charClass
	}{
		{'e', ccLetterE},
		{'E', ccLetterE},
		{'f', ccLetter},
		{'_', ccLetter},
		{'7', ccDigit},
		{'\n', ccEOL},
		{'\t', ccSpace},
		{'\r', ccSpace},
		{'$', ccInvalid},
		{'@', ccInvalid},
		{'`', ccInvalid},
		{0x01, ccInvalid},
		{0x7f, ccInvalid},
		{'#', ccPound},
		{'?', ccPunct},
		{'{', ccPunct},
		{'~', ccTilde},
	}
	for _, tc := range cases {
		if got := classOf(tc.c); got != tc.cc {
			t.Errorf("classOf(%q): expected %s, got %s", tc.c, tc.cc, got)
		}
	}
}
