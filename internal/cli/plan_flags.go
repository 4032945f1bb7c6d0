package cli

import (
	"errors"

	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultHours = 8.0

var errTargetRequired = errors.New("--target is required")

// planFlags are the resource flags shared by allocate, schedule and explore.
type planFlags struct {
	target int
	hours  float64
	staff  int
	molds  int
	bake   float64
	json   bool
}

func (f *planFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.target, "target", "t", 0, "Units to produce")
	fs.Float64Var(&f.hours, "hours", defaultHours, "Hours available in the work day")
	fs.IntVar(&f.staff, "staff", contract.DefaultStaffCount, "People on the line")
	fs.IntVar(&f.molds, "molds", contract.DefaultMoldsAvailable, "Molds available")
	fs.Float64Var(&f.bake, "bake", 0, "Override the configured bake duration, in minutes")
	fs.BoolVar(&f.json, "json", false, "Print the result as JSON")
}

// resolve fills in a missing target through the wizard on a terminal and
// builds the request.
func (f *planFlags) resolve(cmd *cobra.Command, app *App) (contract.AllocationRequest, error) {
	fs := cmd.Flags()
	if !fs.Changed("target") {
		if !app.interactive() {
			return contract.AllocationRequest{}, errTargetRequired
		}
		if err := runPlanWizard(f); err != nil {
			return contract.AllocationRequest{}, err
		}
	}
	return f.request(fs.Changed("bake")), nil
}

func (f *planFlags) request(withBake bool) contract.AllocationRequest {
	req := contract.NewAllocationRequest(f.target, f.hours)
	req.StaffCount = f.staff
	req.MoldsAvailable = f.molds
	if withBake {
		bake := f.bake
		req.CustomBakeMinutes = &bake
	}
	return req
}
