package main

import (
	"fmt"
)

const complete = `#! /bin/bash

_huric_autocomplete() {
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # urfave/cli prints the candidates for the words typed so far
    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion 2>/dev/null )
    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}

complete -o default -F _huric_autocomplete huric
`

func bashCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, complete)
	return err
}
