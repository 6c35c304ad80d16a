package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/account"
	"github.com/curaedu/cura/core/values"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf    *core.Config
	db      *sql.DB
	usrRepo account.Repository
	valRepo values.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate - apply pending database migrations")
	fmt.Println("  addteacher -email EMAIL -name NAME - create a teacher account; the password will be prompted")
	fmt.Println("  seedstatements -file PATH - load value statements from a file, one per line")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addTeacherCmd := flag.NewFlagSet("addteacher", flag.ExitOnError)
	addTeacherEmail := addTeacherCmd.String("email", "", "The teacher's email.")
	addTeacherName := addTeacherCmd.String("name", "", "The teacher's full name.")

	seedCmd := flag.NewFlagSet("seedstatements", flag.ExitOnError)
	seedFile := seedCmd.String("file", "", "Path to a file with one statement per line.")

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "addteacher":
		if err := addTeacherCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addTeacherEmail == "" || *addTeacherName == "" {
			addTeacherCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addTeacherCmd.Usage()
			return errHelp
		}
		return cli.addTeacher(*addTeacherEmail, *addTeacherName, string(pwd))
	case "seedstatements":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedFile == "" {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seedStatements(*seedFile)
	default:
		cli.printUsage()
		return errHelp
	}
}
