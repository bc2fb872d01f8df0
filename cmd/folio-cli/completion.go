package main

import "fmt"

func completionMain(args []string) {
	shell := "bash"
	if len(args) > 0 && args[0] != "" {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	default:
		log.Fatalf("unsupported shell: %s (use bash or zsh)", shell)
	}
}

const bashCompletion = `
_folio_cli_completions()
{
    local cur prev
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "exec serve features config completion --config --log-level --enable --disable -c --path" -- "$cur") )
        return 0
    fi

    case "${prev}" in
        --enable|--disable)
            COMPREPLY=( $(compgen -W "completion clock console_greeting clipboard" -- "$cur") )
            return 0
            ;;
        --path)
            COMPREPLY=( $(compgen -W "/ /blog /#projects /#work" -- "$cur") )
            return 0
            ;;
    esac

    case "${COMP_WORDS[1]}" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            ;;
        config)
            COMPREPLY=( $(compgen -W "init path --force" -- "$cur") )
            ;;
        exec)
            COMPREPLY=( $(compgen -W "--json -c - help clear whoami ls cd contact" -- "$cur") )
            ;;
        serve)
            COMPREPLY=( $(compgen -W "--addr --db --max-sessions --idle-timeout -c" -- "$cur") )
            ;;
        *)
            COMPREPLY=( $(compgen -W "--path -c" -- "$cur") )
            ;;
    esac
}
complete -F _folio_cli_completions folio-cli
`

const zshCompletion = `
#compdef folio-cli
_folio_cli() {
    local -a subcmds
    subcmds=('exec:run terminal commands without the TUI' 'serve:serve the terminal JSON API' 'features:list feature flags' 'config:manage the config file' 'completion:print shell completions')
    if (( CURRENT == 2 )); then
        _describe 'command' subcmds
        return
    fi
    case "$words[2]" in
        completion)
            _values 'shell' bash zsh
            ;;
        config)
            _values 'action' init path
            ;;
        exec)
            _arguments \
                '--json[Emit one JSON object per command]' \
                '-c[Config key=value override]' \
                '*:command:(help clear whoami ls cd contact -)'
            ;;
        serve)
            _arguments \
                '--addr[Listen address]' \
                '--db[SQLite file for the command history]' \
                '--max-sessions[Maximum number of live sessions]' \
                '--idle-timeout[Reclaim sessions idle longer than this]' \
                '-c[Config key=value override]'
            ;;
        *)
            _arguments \
                '--config[Path to config file]' \
                '--log-level[Log level]' \
                '--enable[Enable a feature]:feature:(completion clock console_greeting clipboard)' \
                '--disable[Disable a feature]:feature:(completion clock console_greeting clipboard)' \
                '--path[Page to open first]:path:(/ /blog /#projects /#work)' \
                '-c[Config key=value override]'
            ;;
    esac
}
_folio_cli "$@"
`
