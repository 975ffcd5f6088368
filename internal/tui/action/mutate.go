package action

// MutateRequest is the generic shape of a create/modify/delete dialog's
// submit action. Resource names the screen ("jobs", "indexes", "users",
// ...), Op is "create", "modify", or "delete", and Fields carries whatever
// the dialog collected. One shape serves every mutating dialog instead of a
// struct per resource × operation pair.
type MutateRequest struct {
	Resource string
	Op       string
	Name     string
	Fields   map[string]string
}

func (MutateRequest) isAction() {}

// OperationComplete reports a mutation's success; the screen that issued it
// reloads its list afterward (spec.md §4.5 dispatcher step 6).
type OperationComplete struct {
	Resource string
	Message  string
}

func (OperationComplete) isAction() {}

// OperationFailed reports a mutation's failure; the screen surfaces it as
// an error toast without reloading.
type OperationFailed struct {
	Resource string
	Message  string
}

func (OperationFailed) isAction() {}

// BatchMutateRequest applies Op to every Name in the batch, used by
// multi-select cancel/delete on list screens (jobs, users).
type BatchMutateRequest struct {
	Resource string
	Op       string
	Names    []string
}

func (BatchMutateRequest) isAction() {}

// InstallAppRequest submits the install-app dialog.
type InstallAppRequest struct {
	Path  string
	Force bool
}

func (InstallAppRequest) isAction() {}
