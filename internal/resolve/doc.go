// Package resolve rewrites the flattened property values of a decompiled
// device tree into symbolic token groups.
//
// Resolution pipeline:
//  1. Build the symbol tables (phandle -> path, path -> label).
//  2. Walk every node. List values go through the first matching rule;
//     string values are split into quoted literals.
//  3. A rule with a struct decodes fixed rows of typed cells. A rule without
//     one decodes "phandle + N data cells" groups, where N is read from the
//     referenced node's #<rule>-cells property.
//  4. Anything that cannot be resolved degrades to a hex literal or a bare
//     reference and is reported as a diagnostic. Resolution never fails.
package resolve
