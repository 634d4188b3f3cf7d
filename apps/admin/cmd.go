package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/darasa/core/records"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store *records.Store
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -role ROLE -id ID [-courses CS101,MATH201] - add an account; the secret is prompted")
	fmt.Println("  deleteuser -role ROLE -id ID - delete an account")
	fmt.Println("  resetpassword -role ROLE -id ID - reset an account's secret; the new one is prompted")
	fmt.Println("  listusers -role ROLE - list account IDs under a role")
	fmt.Println("  addexam -subject SUBJECT -date DATE -time TIME - append an exam to the shared schedule")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserRole := addUserCmd.String("role", "", "The account's role: admin, student or faculty.")
	addUserID := addUserCmd.String("id", "", "The account's user ID. The secret will be prompted next.")
	addUserCourses := addUserCmd.String("courses", "", "Comma-separated course IDs to assign (faculty only).")

	deleteUserCmd := flag.NewFlagSet("deleteuser", flag.ExitOnError)
	deleteUserRole := deleteUserCmd.String("role", "", "The account's role: admin, student or faculty.")
	deleteUserID := deleteUserCmd.String("id", "", "The account's user ID.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordRole := resetPasswordCmd.String("role", "", "The account's role: admin, student or faculty.")
	resetPasswordID := resetPasswordCmd.String("id", "", "The account's user ID. The new secret will be prompted next.")

	listUsersCmd := flag.NewFlagSet("listusers", flag.ExitOnError)
	listUsersRole := listUsersCmd.String("role", "", "The role to list: admin, student or faculty.")

	addExamCmd := flag.NewFlagSet("addexam", flag.ExitOnError)
	addExamSubject := addExamCmd.String("subject", "", "The exam's subject.")
	addExamDate := addExamCmd.String("date", "", "The exam's date.")
	addExamTime := addExamCmd.String("time", "", "The exam's time.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserRole == "" || *addUserID == "" {
			addUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword(addUserCmd)
		if err != nil {
			return err
		}
		return cli.addUser(*addUserRole, *addUserID, *addUserCourses, pwd)
	case "deleteuser":
		if err := deleteUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *deleteUserRole == "" || *deleteUserID == "" {
			deleteUserCmd.Usage()
			return errHelp
		}
		return cli.deleteUser(*deleteUserRole, *deleteUserID)
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordRole == "" || *resetPasswordID == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword(resetPasswordCmd)
		if err != nil {
			return err
		}
		return cli.resetPassword(*resetPasswordRole, *resetPasswordID, pwd)
	case "listusers":
		if err := listUsersCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *listUsersRole == "" {
			listUsersCmd.Usage()
			return errHelp
		}
		for _, id := range cli.store.Users(records.Role(*listUsersRole)) {
			fmt.Println(id)
		}
		return nil
	case "addexam":
		if err := addExamCmd.Parse(args[2:]); err != nil {
			return err
		}
		msg, err := cli.store.AddExam(*addExamSubject, *addExamDate, *addExamTime)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword(cmd *flag.FlagSet) (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		cmd.Usage()
		return "", errHelp
	}
	return string(pwd), nil
}

func (cli *commandLine) deleteUser(role, id string) error {
	msg, err := cli.store.DeleteUser(records.Role(role), id)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (cli *commandLine) resetPassword(role, id, pwd string) error {
	msg, err := cli.store.ResetPassword(records.Role(role), id, pwd)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (cli *commandLine) addUser(role, id, courses, pwd string) error {
	na := records.NewAccount{
		Role:   records.Role(role),
		ID:     id,
		Secret: pwd,
	}
	if courses != "" {
		for _, cid := range strings.Split(courses, ",") {
			na.Courses = append(na.Courses, strings.TrimSpace(cid))
		}
	}
	msg, err := cli.store.AddUser(na)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
