package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	echoapi "github.com/Sazzad-Saju/circle-funds-flow/apps/api/echo"
	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/fund"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf    *core.Config
	fundSvc *fund.Service
	usrSvc  *user.Service
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  summary              - print the fund summary and target progress")
	fmt.Fprintln(cli.out, "  leaderboard          - print the contributors ranking")
	fmt.Fprintln(cli.out, "  payments             - print the monthly payments ledger")
	fmt.Fprintln(cli.out, "  token -email EMAIL   - log in as a member and print a session token")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	tokenCmd := flag.NewFlagSet("token", flag.ContinueOnError)
	tokenCmd.SetOutput(cli.out)
	tokenEmail := tokenCmd.String("email", "", "The member's email. The password will be prompted next.")

	switch args[1] {
	case "summary":
		return cli.summary()
	case "leaderboard":
		return cli.leaderboard()
	case "payments":
		return cli.payments()
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *tokenEmail == "" {
			tokenCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(*tokenEmail, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) summary() error {
	sum, err := cli.fundSvc.Summary()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total funds\t%s\n", sum.TotalDisplay)
	fmt.Fprintf(w, "Target\t%s\n", sum.TargetDisplay)
	fmt.Fprintf(w, "Progress\t%s\n", sum.ProgressDisplay)
	fmt.Fprintf(w, "Contributors\t%d\n", sum.TotalContributors)
	fmt.Fprintf(w, "Average contribution\t%s\n", cli.fundSvc.FormatAmount(sum.AverageContribution))
	fmt.Fprintf(w, "Monthly growth\t%s\n", core.FormatPercent(sum.MonthlyGrowth))
	return w.Flush()
}

func (cli *commandLine) leaderboard() error {
	cs, err := cli.fundSvc.Leaderboard()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tTOTAL\tMONTHLY AVG\tCONSISTENCY")
	for _, c := range cs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d%% (%s)\n",
			c.Rank, c.Name, cli.fundSvc.FormatAmount(c.TotalContribution),
			cli.fundSvc.FormatAmount(c.MonthlyAverage), c.Consistency, c.Tier)
	}
	return w.Flush()
}

func (cli *commandLine) payments() error {
	rows, err := cli.fundSvc.MonthlyPayments()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tFIXED\tPAID\tSTATUS\tDUE")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Month, cli.fundSvc.FormatAmount(r.FixedAmount), cli.fundSvc.FormatAmount(r.ActualAmount), r.Status, r.DueDate)
	}
	return w.Flush()
}

// token runs the login flow and prints a session token for the member.
func (cli *commandLine) token(email, pwd string) error {
	cr := user.Credentials{Email: email, Password: pwd}
	if cr.Email = core.CleanString(cr.Email, true /* lower */); cr.Email == "" {
		return errHelp
	}
	usr, _, err := cli.usrSvc.Login(context.Background(), cr)
	if err != nil {
		return err
	}
	token, err := echoapi.IssueToken(usr, cli.conf)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "member: %s <%s> (id %s)\n", usr.Name, usr.Email, usr.ID)
	fmt.Fprintln(cli.out, token)
	return nil
}
