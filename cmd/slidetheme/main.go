/*
Command slidetheme inspects slide themes.

It lists the themes known to an engine, shows the effect of a theme on a
sample deck, and converts CSS or HTML themes to YAML:

    slidetheme themes --dir ./themes
    slidetheme show slide-center
    slidetheme show --dot my-theme --dir ./themes | dot -Tsvg > deck.svg
    slidetheme convert ./themes/centered.css

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
