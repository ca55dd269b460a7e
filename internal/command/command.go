// Package command holds the canonical spelling of each Dockerfile
// instruction keyword, used both as the match candidates in the
// instruction dispatcher and as the keys in its result switch.
package command

const (
	Add         = "ADD"
	Arg         = "ARG"
	Cmd         = "CMD"
	Copy        = "COPY"
	Entrypoint  = "ENTRYPOINT"
	Env         = "ENV"
	Expose      = "EXPOSE"
	From        = "FROM"
	Healthcheck = "HEALTHCHECK"
	Label       = "LABEL"
	Maintainer  = "MAINTAINER"
	Onbuild     = "ONBUILD"
	Run         = "RUN"
	Shell       = "SHELL"
	StopSignal  = "STOPSIGNAL"
	User        = "USER"
	Volume      = "VOLUME"
	Workdir     = "WORKDIR"
)
